package generation

import (
	"context"
	"sync"
)

// fakeProvider returns scripted responses in order; the last one repeats.
type fakeProvider struct {
	mu        sync.Mutex
	responses []fakeResponse
	calls     int
	requests  []Request
	panicWith any
}

type fakeResponse struct {
	text string
	err  error
}

func (f *fakeProvider) Complete(ctx context.Context, req Request) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.panicWith != nil {
		panic(f.panicWith)
	}

	f.requests = append(f.requests, req)
	i := min(f.calls, len(f.responses)-1)
	f.calls++
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return f.responses[i].text, f.responses[i].err
}

func (f *fakeProvider) Model() string { return "fake-model" }

func (f *fakeProvider) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func factoryFor(p Provider) ProviderFactory {
	return func(context.Context, string) (Provider, error) { return p, nil }
}
