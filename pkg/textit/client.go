/*
Package textit is a client for the TextIT Russian text-processing API.

It exposes the nine service operations either as immediate calls on
Client or queued into a single batch submission. Every logical
operation becomes one Command; one or more commands are wrapped into
the wire envelope, posted, and the heterogeneous response array is
matched back to the commands in submission order.

Immediate call:

	client := textit.NewClient(nil)
	words, err := client.Correct(ctx, "очепатка")

Batched calls share one round-trip:

	b := client.Batch()
	b.Correct("очепатка")
	b.Numeral(1234, "рубль", textit.NumeralOptions{})
	results, err := b.Submit(ctx)

Validation failures (too many words, text over the limit, a negative
number, submitting an empty batch) are reported before anything hits
the network. Server and transport failures come back as the pkg/api
error taxonomy.
*/
package textit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/prostmich/textit-go/internal/logger"
	"github.com/prostmich/textit-go/pkg/api"
	"github.com/prostmich/textit-go/pkg/config"
	"github.com/prostmich/textit-go/pkg/morph"
)

// Client issues TextIT operations through a Transport. Each client
// owns exactly one pending batch.
type Client struct {
	transport api.Transport
	helpURL   string
	log       *log.Logger
	batch     *Batch
}

// NewClient builds a client over the stock HTTP transport. A nil
// config uses production defaults.
func NewClient(cfg *config.Config) *Client {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	transport := api.NewHTTPTransport(api.HTTPOptions{
		URL:               cfg.API.URL,
		Timeout:           time.Duration(cfg.API.TimeoutMS) * time.Millisecond,
		RequestsPerSecond: cfg.API.RequestsPerSecond,
		Burst:             cfg.API.Burst,
	})
	return NewClientWithTransport(transport, cfg.API.HelpURL)
}

// NewClientWithTransport builds a client over a caller-supplied
// transport. Tests use this with fakes.
func NewClientWithTransport(transport api.Transport, helpURL string) *Client {
	if helpURL == "" {
		helpURL = api.HelpURL
	}
	c := &Client{
		transport: transport,
		helpURL:   helpURL,
		log:       logger.New("textit"),
	}
	c.batch = &Batch{client: c}
	return c
}

// Batch returns the client's pending batch queue.
func (c *Client) Batch() *Batch {
	return c.batch
}

// call serializes the commands into one envelope, submits it and
// returns the classified response body.
func (c *Client) call(ctx context.Context, cmds []Command) (json.RawMessage, error) {
	data, err := newPayload(c.helpURL, cmds).encode()
	if err != nil {
		return nil, err
	}
	c.log.Debug("request", "commands", len(cmds), "bytes", len(data))
	resp, err := c.transport.Submit(ctx, data)
	if err != nil {
		return nil, err
	}
	return api.Classify(resp)
}

// single runs one command immediately and returns its shaped result.
func (c *Client) single(ctx context.Context, cmd Command) (Result, error) {
	body, err := c.call(ctx, []Command{cmd})
	if err != nil {
		return Result{}, err
	}
	results, err := reconcile([]Command{cmd}, body)
	if err != nil {
		return Result{}, err
	}
	return results[0], nil
}

// Correct lists possible fixes for a misspelled word, e.g. "очепатка"
// suggests "опечатка".
func (c *Client) Correct(ctx context.Context, word string) ([]*morph.WordAnalysis, error) {
	cmd, err := correctCommand(word)
	if err != nil {
		return nil, err
	}
	res, err := c.single(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return res.Words, nil
}

// Hint suggests next words for up to 30 characters of previously
// entered text.
func (c *Client) Hint(ctx context.Context, text string) ([]*morph.WordAnalysis, error) {
	cmd, err := hintCommand(text)
	if err != nil {
		return nil, err
	}
	res, err := c.single(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return res.Words, nil
}

// Numeral expands a non-negative number into its textual form for the
// given unit word. Nil result means the service found nothing.
func (c *Client) Numeral(ctx context.Context, number int, word string, opts NumeralOptions) (*morph.NumeralExpansion, error) {
	cmd, err := numeralCommand(number, word, opts)
	if err != nil {
		return nil, err
	}
	res, err := c.single(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return res.Numeral, nil
}

// Speller checks up to 10000 characters of text and reports the first
// misspelling found. With suggest set, the misspelled span is run
// through Correct and the candidates are attached to the report; this
// is the one place a shaped operation costs a second round-trip.
func (c *Client) Speller(ctx context.Context, text string, suggest bool) (*morph.SpellingReport, error) {
	cmd, err := spellerCommand(text)
	if err != nil {
		return nil, err
	}
	res, err := c.single(ctx, cmd)
	if err != nil {
		return nil, err
	}
	report := res.Spelling
	if report == nil || !suggest || report.Word == "" {
		return report, nil
	}
	corrections, err := c.Correct(ctx, report.Word)
	if err != nil {
		return nil, err
	}
	report.Corrections = corrections
	return report, nil
}

// WordInfo returns the morphological decomposition, attributes and
// lemma of a single word.
func (c *Client) WordInfo(ctx context.Context, word string) (*morph.WordAnalysis, error) {
	cmd, err := wordInfoCommand(word)
	if err != nil {
		return nil, err
	}
	res, err := c.single(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return res.Word, nil
}

// SetForm inflects a word into the requested grammatical form.
func (c *Client) SetForm(ctx context.Context, word string, form FormSpec) (*morph.WordAnalysis, error) {
	cmd, err := setFormCommand(word, form)
	if err != nil {
		return nil, err
	}
	res, err := c.single(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return res.Word, nil
}

// SetFormInfo inflects a word, then looks the inflected form up and
// merges the full analysis into the result. Two dependent calls,
// composed explicitly.
func (c *Client) SetFormInfo(ctx context.Context, word string, form FormSpec) (*morph.WordAnalysis, error) {
	inflected, err := c.SetForm(ctx, word, form)
	if err != nil || inflected == nil {
		return inflected, err
	}
	info, err := c.WordInfo(ctx, inflected.Word)
	if err != nil {
		return nil, err
	}
	inflected.Merge(info)
	return inflected, nil
}

// Cognate lists words sharing the root, e.g. "делать" yields "дело".
func (c *Client) Cognate(ctx context.Context, word string) ([]*morph.WordAnalysis, error) {
	cmd, err := cognateCommand(word)
	if err != nil {
		return nil, err
	}
	res, err := c.single(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return res.Words, nil
}

// Synonym lists synonyms, e.g. "ёмкость" yields "сосуд".
func (c *Client) Synonym(ctx context.Context, word string) ([]*morph.WordAnalysis, error) {
	cmd, err := synonymCommand(word)
	if err != nil {
		return nil, err
	}
	res, err := c.single(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return res.Words, nil
}

// Transliterate converts text typed in the Latin keyboard layout into
// Cyrillic, e.g. "Ghbvth ntrcnf" becomes "Пример текста".
func (c *Client) Transliterate(ctx context.Context, text string) (string, error) {
	cmd, err := transliterateCommand(text)
	if err != nil {
		return "", err
	}
	res, err := c.single(ctx, cmd)
	if err != nil {
		return "", err
	}
	return res.Text, nil
}
