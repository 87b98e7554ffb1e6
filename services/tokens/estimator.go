// Package tokens counts prompt tokens the way the target model's tokenizer does.
package tokens

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"
	tiktoken_loader "github.com/pkoukk/tiktoken-go-loader"
)

// ErrUnknownModel is returned for a model id with no tokenizer mapping.
var ErrUnknownModel = errors.New("no tokenizer known for model")

const (
	encodingCL100K = "cl100k_base"
	encodingO200K  = "o200k_base"
)

// familyEncodings maps model id prefixes to tiktoken encodings. Longer
// prefixes must come first.
var familyEncodings = []struct {
	prefix   string
	encoding string
}{
	{"gpt-4o", encodingO200K},
	{"gpt-4", encodingCL100K},
	{"gpt-3.5-turbo", encodingCL100K},
	{"text-embedding-3", encodingCL100K},
	// Gemini has no public BPE; cl100k is close enough for budgeting.
	{"gemini-", encodingCL100K},
	{"models/gemini-", encodingCL100K},
}

// EncodingFor returns the tiktoken encoding name for model.
func EncodingFor(model string) (string, error) {
	for _, f := range familyEncodings {
		if strings.HasPrefix(model, f.prefix) {
			return f.encoding, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownModel, model)
}

var installLoader sync.Once

// embeddedFirstLoader reads BPE ranks from the files embedded in
// tiktoken-go-loader and only downloads an encoding it does not ship.
type embeddedFirstLoader struct {
	embedded tiktoken.BpeLoader
	remote   tiktoken.BpeLoader
}

func (l embeddedFirstLoader) LoadTiktokenBpe(file string) (map[string]int, error) {
	ranks, err := l.embedded.LoadTiktokenBpe(file)
	if err == nil {
		return ranks, nil
	}
	return l.remote.LoadTiktokenBpe(file)
}

// Estimator counts tokens with tiktoken, loading each encoding once.
type Estimator struct {
	mu       sync.Mutex
	encoders map[string]*tiktoken.Tiktoken
}

func NewEstimator() *Estimator {
	installLoader.Do(func() {
		tiktoken.SetBpeLoader(embeddedFirstLoader{
			embedded: tiktoken_loader.NewOfflineLoader(),
			remote:   tiktoken.NewDefaultBpeLoader(),
		})
	})
	return &Estimator{encoders: make(map[string]*tiktoken.Tiktoken)}
}

// Estimate returns the number of tokens model's tokenizer assigns to text.
func (e *Estimator) Estimate(model, text string) (int, error) {
	name, err := EncodingFor(model)
	if err != nil {
		return 0, err
	}
	enc, err := e.encoder(name)
	if err != nil {
		return 0, fmt.Errorf("load %s encoding: %w", name, err)
	}
	// Count special-token lookalikes as text instead of panicking on them.
	return len(enc.Encode(text, []string{"all"}, nil)), nil
}

func (e *Estimator) encoder(name string) (*tiktoken.Tiktoken, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if enc, ok := e.encoders[name]; ok {
		return enc, nil
	}
	enc, err := tiktoken.GetEncoding(name)
	if err != nil {
		return nil, err
	}
	e.encoders[name] = enc
	return enc, nil
}
