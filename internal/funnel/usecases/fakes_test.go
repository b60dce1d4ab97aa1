package usecases_test

import (
	"context"
	"sync"
	"time"

	"havenground-server/internal/funnel/domain"
	"havenground-server/internal/funnel/usecases"
	"havenground-server/internal/infra/cache"
	"havenground-server/internal/infra/classifier"
)

type fakeCache struct {
	mu       sync.Mutex
	values   map[string]any
	setFails bool
}

var _ cache.Cache = (*fakeCache)(nil)

func newFakeCache() *fakeCache {
	return &fakeCache{values: make(map[string]any)}
}

func (c *fakeCache) Get(_ context.Context, key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	value, found := c.values[key]
	return value, found
}

func (c *fakeCache) Set(_ context.Context, key string, value any, _ time.Duration) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.setFails {
		return false
	}
	c.values[key] = value
	return true
}

func (c *fakeCache) Delete(_ context.Context, key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.values, key)
}

func (c *fakeCache) GetOrSet(ctx context.Context, key string, ttl time.Duration, loader func() (any, error)) (any, error) {
	if value, found := c.Get(ctx, key); found {
		return value, nil
	}

	value, err := loader()
	if err != nil {
		return nil, err
	}

	c.Set(ctx, key, value, ttl)
	return value, nil
}

type fakeProvider struct {
	sendErr       error
	checkErr      error
	checkApproved bool

	sendCalls  int
	checkCalls int
	lastPhone  string
	lastCode   string
}

func (p *fakeProvider) SendCode(_ context.Context, e164 string) error {
	p.sendCalls++
	p.lastPhone = e164
	return p.sendErr
}

func (p *fakeProvider) CheckCode(_ context.Context, e164, code string) (bool, error) {
	p.checkCalls++
	p.lastPhone = e164
	p.lastCode = code
	return p.checkApproved, p.checkErr
}

type fakeLeadRepository struct {
	mu        sync.Mutex
	leads     []domain.Lead
	createErr error
}

func (r *fakeLeadRepository) Create(_ context.Context, lead domain.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.leads = append(r.leads, lead)
	return nil
}

func (r *fakeLeadRepository) FindAll(_ context.Context, pagination usecases.Pagination) ([]domain.Lead, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	total := len(r.leads)
	start := pagination.Offset
	if start > total {
		start = total
	}
	end := start + pagination.Limit
	if pagination.Limit <= 0 || end > total {
		end = total
	}

	return append([]domain.Lead(nil), r.leads[start:end]...), total, nil
}

type fakeClassifier struct {
	result classifier.Result
	err    error
	calls  int
}

func (c *fakeClassifier) Classify(_ context.Context, _ string) (classifier.Result, error) {
	c.calls++
	return c.result, c.err
}

type fakeWebhookClient struct {
	mu       sync.Mutex
	payloads []any
	err      error
}

func (c *fakeWebhookClient) Forward(_ context.Context, payload any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.payloads = append(c.payloads, payload)
	return nil
}

func (c *fakeWebhookClient) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.payloads)
}

type smsMessage struct {
	to   string
	body string
}

type fakeSMSClient struct {
	mu       sync.Mutex
	messages []smsMessage
	err      error
}

func (c *fakeSMSClient) Send(_ context.Context, to, body string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.messages = append(c.messages, smsMessage{to: to, body: body})
	return nil
}

func (c *fakeSMSClient) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.messages)
}
