/*
Package morph holds the typed results of TextIT lookups and the closed
morphological label sets they are built from.

Every enumeration member carries exactly one wire string, the lowercase
label unless the remote API names it differently (e.g. "Number-string").
Wire strings are fixed at definition time; parsing an unknown wire value
is an error, never a silent fallback.
*/
package morph

import "fmt"

// Part is a part of speech.
type Part string

const (
	PartNoun             Part = "noun"
	PartAdjective        Part = "adjective"
	PartVerb             Part = "verb"
	PartAdverb           Part = "adverb"
	PartNumeral          Part = "numeral"
	PartPronoun          Part = "pronoun"
	PartPreposition      Part = "preposition"
	PartUnion            Part = "union"
	PartParticle         Part = "particle"
	PartInterjection     Part = "interjection"
	PartParticiple       Part = "participle"
	PartVerbalParticiple Part = "verbal_participle"
	PartComparative      Part = "comparative"
	PartPredicative      Part = "predicative"
)

// Case is a grammatical case.
type Case string

const (
	CaseNominative    Case = "nominative"
	CaseGenitive      Case = "genitive"
	CaseDative        Case = "dative"
	CaseAccusative    Case = "accusative"
	CaseInstrumental  Case = "instrumental"
	CasePrepositional Case = "prepositional"
)

// Form is a word form (full/short adjectives, personal verbs).
type Form string

const (
	FormUndefined Form = "undefined"
	FormPersonal  Form = "personal"
	FormFull      Form = "full"
	FormShort     Form = "short"
)

// Gender is a grammatical gender.
type Gender string

const (
	GenderMasculine Gender = "masculine"
	GenderFeminine  Gender = "feminine"
	GenderNeuter    Gender = "neuter"
	GenderCommon    Gender = "common"
)

// Kind is a verb aspect.
type Kind string

const (
	KindImperfect Kind = "imperfect"
	KindPerfect   Kind = "perfect"
)

// Animate marks noun animacy.
type Animate string

const (
	AnimateAnimate   Animate = "animate"
	AnimateInanimate Animate = "inanimate"
)

// Number is a grammatical number.
type Number string

const (
	NumberSingular Number = "singular"
	NumberPlural   Number = "plural"
)

// Person is a verb person.
type Person string

const (
	PersonFirst  Person = "first_person"
	PersonSecond Person = "second_person"
	PersonThird  Person = "third_person"
)

// Tense is a verb tense.
type Tense string

const (
	TensePresent Tense = "present"
	TensePast    Tense = "past"
	TenseFuture  Tense = "future"
)

// WordType is the lexical origin of a word.
type WordType string

const (
	TypeDictionary WordType = "dictionary"
	TypeNamed      WordType = "named"
	TypeUnknown    WordType = "unknown"
)

// Static membership tables; built once, checked on every coercion.
var (
	partSet = memberSet(
		PartNoun, PartAdjective, PartVerb, PartAdverb, PartNumeral,
		PartPronoun, PartPreposition, PartUnion, PartParticle,
		PartInterjection, PartParticiple, PartVerbalParticiple,
		PartComparative, PartPredicative,
	)
	caseSet = memberSet(
		CaseNominative, CaseGenitive, CaseDative, CaseAccusative,
		CaseInstrumental, CasePrepositional,
	)
	formSet    = memberSet(FormUndefined, FormPersonal, FormFull, FormShort)
	genderSet  = memberSet(GenderMasculine, GenderFeminine, GenderNeuter, GenderCommon)
	kindSet    = memberSet(KindImperfect, KindPerfect)
	animateSet = memberSet(AnimateAnimate, AnimateInanimate)
	numberSet  = memberSet(NumberSingular, NumberPlural)
	personSet  = memberSet(PersonFirst, PersonSecond, PersonThird)
	tenseSet   = memberSet(TensePresent, TensePast, TenseFuture)
	typeSet    = memberSet(TypeDictionary, TypeNamed, TypeUnknown)
)

func memberSet[T ~string](members ...T) map[T]struct{} {
	set := make(map[T]struct{}, len(members))
	for _, m := range members {
		if m == "" {
			panic("morph: empty wire name")
		}
		set[m] = struct{}{}
	}
	return set
}

func parseMember[T ~string](label, wire string, set map[T]struct{}) (T, error) {
	v := T(wire)
	if _, ok := set[v]; !ok {
		return "", fmt.Errorf("morph: unknown %s %q", label, wire)
	}
	return v, nil
}

// ParsePart coerces a wire value into a Part.
func ParsePart(s string) (Part, error) { return parseMember("part", s, partSet) }

// ParseCase coerces a wire value into a Case.
func ParseCase(s string) (Case, error) { return parseMember("case", s, caseSet) }

// ParseForm coerces a wire value into a Form.
func ParseForm(s string) (Form, error) { return parseMember("form", s, formSet) }

// ParseGender coerces a wire value into a Gender.
func ParseGender(s string) (Gender, error) { return parseMember("gender", s, genderSet) }

// ParseKind coerces a wire value into a Kind.
func ParseKind(s string) (Kind, error) { return parseMember("kind", s, kindSet) }

// ParseAnimate coerces a wire value into an Animate.
func ParseAnimate(s string) (Animate, error) { return parseMember("animate", s, animateSet) }

// ParseNumber coerces a wire value into a Number.
func ParseNumber(s string) (Number, error) { return parseMember("number", s, numberSet) }

// ParsePerson coerces a wire value into a Person.
func ParsePerson(s string) (Person, error) { return parseMember("person", s, personSet) }

// ParseTense coerces a wire value into a Tense.
func ParseTense(s string) (Tense, error) { return parseMember("tense", s, tenseSet) }

// ParseWordType coerces a wire value into a WordType.
func ParseWordType(s string) (WordType, error) { return parseMember("type", s, typeSet) }
