package redact

import (
	"crypto/sha256"
	"io"
	"sync"

	"github.com/suryansh-23/redactkit/internal/allowlist"
	"github.com/suryansh-23/redactkit/internal/debug"
	"github.com/suryansh-23/redactkit/internal/detect"
)

// CacheKey identifies a (text, options) pair.
type CacheKey [sha256.Size]byte

// ResultCache memoizes results for repeated calls with identical input.
type ResultCache interface {
	Get(key CacheKey) (Result, bool)
	Put(key CacheKey, result Result)
}

// Engine runs the scan, resolve and redact pipeline. It holds no per-call
// state and is safe for concurrent use.
type Engine struct {
	scanner *detect.Scanner
	allow   []string
	cache   ResultCache
	logger  *debug.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger attaches a sanitized debug logger.
func WithLogger(logger *debug.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithAllowlist skips matches whose value matches one of the glob patterns.
func WithAllowlist(patterns []string) Option {
	return func(e *Engine) { e.allow = append([]string(nil), patterns...) }
}

// WithCache memoizes results in c.
func WithCache(c ResultCache) Option {
	return func(e *Engine) { e.cache = c }
}

// New builds an engine over reg. A nil registry selects the built-in detectors.
func New(reg *detect.Registry, opts ...Option) *Engine {
	e := &Engine{scanner: detect.NewScanner(reg)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEngine = sync.OnceValue(func() *Engine { return New(nil) })

// Redact runs the built-in detectors over text.
func Redact(text string, opts Options) Result {
	return defaultEngine().Redact(text, opts)
}

// Redact locates every enabled category in text and returns the redacted
// copy with its detections in reading order. It never fails.
func (e *Engine) Redact(text string, opts Options) Result {
	opts = opts.Normalized()

	var key CacheKey
	if e.cache != nil {
		key = cacheKey(text, opts)
		if cached, ok := e.cache.Get(key); ok {
			e.logger.Debugw("redact cache hit", "chars", len(text))
			return cached.clone()
		}
	}

	found := e.scanner.Scan(text, opts)
	scanned := found.Count()
	e.filterAllowed(found)
	resolved := detect.Resolve(found, e.scanner.Registry().Categories(), opts.Overlap)
	redacted, detections := apply(text, resolved, opts)
	result := assemble(redacted, detections)

	e.logger.Debugw("redact",
		"categories", len(opts.EnabledCategories()),
		"scanned", scanned,
		"applied", len(resolved),
		"overlap", string(opts.Overlap),
		"chars", len(text),
	)

	if e.cache != nil {
		e.cache.Put(key, result.clone())
	}
	return result
}

func (e *Engine) filterAllowed(found detect.Matches) {
	if len(e.allow) == 0 {
		return
	}
	for category, list := range found {
		kept := list[:0]
		for _, m := range list {
			ok, err := allowlist.Match(e.allow, m.Value)
			if err != nil {
				e.logger.Infof("allowlist: invalid pattern: %v", err)
			}
			if ok {
				continue
			}
			kept = append(kept, m)
		}
		if len(kept) == 0 {
			delete(found, category)
			continue
		}
		found[category] = kept
	}
}

func cacheKey(text string, opts Options) CacheKey {
	h := sha256.New()
	var flags [7]byte
	for i, on := range []bool{opts.Emails, opts.PhoneNumbers, opts.SSN, opts.CreditCards, opts.Names, opts.Addresses, opts.PreserveLength} {
		if on {
			flags[i] = 1
		}
	}
	_, _ = h.Write(flags[:])
	for _, part := range []string{opts.RedactionChar, string(opts.Overlap), text} {
		_, _ = io.WriteString(h, part)
		_, _ = h.Write([]byte{0})
	}
	var key CacheKey
	copy(key[:], h.Sum(nil))
	return key
}
