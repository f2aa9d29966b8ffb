package cache

import (
	"errors"
	"reflect"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

var ErrNotFound = errors.New("cache: value not found")

func NewSingular[T any](key string) *Singular[T] {
	return &Singular[T]{
		key: key,
		c:   cache.New(cache.NoExpiration, time.Minute*10),
	}
}

type Singular[T any] struct {
	// m is a mutex for MutexGetSet for concurrent prevention
	m sync.Mutex

	key string

	c *cache.Cache
}

func (c *Singular[T]) Get(dest *T) error {
	result, ok := c.c.Get(c.key)
	if !ok {
		return ErrNotFound
	}
	copyTo(result, dest)
	return nil
}

func (c *Singular[T]) Set(value T, expire time.Duration) error {
	c.c.Set(c.key, value, expire)
	return nil
}

// MutexGetSet gets value from cache and writes to dest, or if the key does not
// exist, it executes valueFunc to get the value if the key still does not exist
// when serially dispatched, sets the value to cache and writes it to dest.
func (c *Singular[T]) MutexGetSet(dest *T, valueFunc func() (T, error), expire time.Duration) error {
	if err := c.Get(dest); err == nil {
		return nil
	}
	// onwards, cache key does not exist

	return c.slowMutexGetSet(dest, valueFunc, expire)
}

func (c *Singular[T]) slowMutexGetSet(dest *T, valueFunc func() (T, error), expire time.Duration) error {
	c.m.Lock()
	defer c.m.Unlock()
	if err := c.Get(dest); err == nil {
		return nil
	}

	value, err := valueFunc()
	if err != nil {
		log.Error().Err(err).Str("key", c.key).Msg("failed to get value from valueFunc() in MutexGetSet")
		return err
	}

	if err := c.Set(value, expire); err != nil {
		log.Error().Err(err).Str("key", c.key).Msg("failed to set value to cache in MutexGetSet")
		return err
	}

	copyTo(value, dest)
	return nil
}

func (c *Singular[T]) Flush() error {
	c.c.Flush()
	return nil
}

// copyTo copies value to dest, dereferencing value if it is a pointer.
func copyTo[T any](value any, dest *T) {
	var r reflect.Value
	if reflect.ValueOf(value).Kind() == reflect.Ptr {
		r = reflect.ValueOf(value).Elem()
	} else {
		r = reflect.ValueOf(value)
	}
	reflect.ValueOf(dest).Elem().Set(r)
}
