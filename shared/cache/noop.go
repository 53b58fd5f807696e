package cache

import "context"

type noopCache struct{}

// NewNoop returns a Cache that stores nothing. Every Get is a miss and every counter
// starts over at one.
func NewNoop() Cache {
	return noopCache{}
}

func (noopCache) Save(context.Context, string, any, int) error { return nil }

func (noopCache) Get(context.Context, string, any) error { return Nil }

func (noopCache) Delete(context.Context, string) error { return nil }

func (noopCache) Clear(context.Context, string) error { return nil }

func (noopCache) Increment(context.Context, string, int) (int64, error) { return 1, nil }
