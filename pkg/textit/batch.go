package textit

import (
	"context"
	"sync"
)

// Batch is the client's ordered queue of pending commands. Operations
// queued here share a single wire request when Submit is called.
//
// Enqueueing validates arguments exactly like the immediate calls do,
// so a command that makes it into the queue can no longer fail
// locally. Submit drains the queue before the network call; commands
// appended concurrently with a Submit land in the next batch, never
// duplicated into the in-flight one.
type Batch struct {
	client *Client

	mu   sync.Mutex
	cmds []Command
}

func (b *Batch) add(cmd Command) {
	b.mu.Lock()
	b.cmds = append(b.cmds, cmd)
	b.mu.Unlock()
}

// Len reports how many commands are pending.
func (b *Batch) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.cmds)
}

// Correct queues a spelling-correction lookup.
func (b *Batch) Correct(word string) error {
	cmd, err := correctCommand(word)
	if err != nil {
		return err
	}
	b.add(cmd)
	return nil
}

// Hint queues a next-word hint lookup.
func (b *Batch) Hint(text string) error {
	cmd, err := hintCommand(text)
	if err != nil {
		return err
	}
	b.add(cmd)
	return nil
}

// Numeral queues a numeral expansion.
func (b *Batch) Numeral(number int, word string, opts NumeralOptions) error {
	cmd, err := numeralCommand(number, word, opts)
	if err != nil {
		return err
	}
	b.add(cmd)
	return nil
}

// Speller queues a spell check. Correction candidates are not fetched
// for batched checks; use Client.Speller for that.
func (b *Batch) Speller(text string) error {
	cmd, err := spellerCommand(text)
	if err != nil {
		return err
	}
	b.add(cmd)
	return nil
}

// WordInfo queues a morphological lookup.
func (b *Batch) WordInfo(word string) error {
	cmd, err := wordInfoCommand(word)
	if err != nil {
		return err
	}
	b.add(cmd)
	return nil
}

// SetForm queues a word inflection.
func (b *Batch) SetForm(word string, form FormSpec) error {
	cmd, err := setFormCommand(word, form)
	if err != nil {
		return err
	}
	b.add(cmd)
	return nil
}

// Cognate queues a same-root lookup.
func (b *Batch) Cognate(word string) error {
	cmd, err := cognateCommand(word)
	if err != nil {
		return err
	}
	b.add(cmd)
	return nil
}

// Synonym queues a synonym lookup.
func (b *Batch) Synonym(word string) error {
	cmd, err := synonymCommand(word)
	if err != nil {
		return err
	}
	b.add(cmd)
	return nil
}

// Transliterate queues a layout conversion.
func (b *Batch) Transliterate(text string) error {
	cmd, err := transliterateCommand(text)
	if err != nil {
		return err
	}
	b.add(cmd)
	return nil
}

// Submit sends every pending command in one wire request and returns
// one shaped Result per command, in the order they were queued.
//
// The queue is cleared atomically before the network call. Submitting
// an empty batch fails with ErrEmptyBatch and never builds a payload.
func (b *Batch) Submit(ctx context.Context) ([]Result, error) {
	b.mu.Lock()
	if len(b.cmds) == 0 {
		b.mu.Unlock()
		return nil, ErrEmptyBatch
	}
	cmds := b.cmds
	b.cmds = nil
	b.mu.Unlock()

	body, err := b.client.call(ctx, cmds)
	if err != nil {
		return nil, err
	}
	return reconcile(cmds, body)
}
