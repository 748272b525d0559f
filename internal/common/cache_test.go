package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheSetGetDelete(t *testing.T) {
	c := NewCache(5*time.Minute, 10*time.Minute)

	key := CacheKeyBlog(1)
	c.Set(key, "value")

	v, ok := c.Get(key)
	assert.True(t, ok)
	assert.Equal(t, "value", v)

	c.Delete(key)

	_, ok = c.Get(key)
	assert.False(t, ok)
}

func TestCacheExpiration(t *testing.T) {
	c := NewCache(5*time.Minute, 10*time.Minute)

	c.Set(CacheKeyBlog(2), "value", 10*time.Millisecond)

	time.Sleep(20 * time.Millisecond)

	_, ok := c.Get(CacheKeyBlog(2))
	assert.False(t, ok)
}

func TestCacheFlush(t *testing.T) {
	c := NewCache(5*time.Minute, 10*time.Minute)

	c.Set(CacheKeyBlog(1), "a")
	c.Set(CacheKeyBlog(2), "b")

	c.Flush()

	_, ok := c.Get(CacheKeyBlog(1))
	assert.False(t, ok)
	_, ok = c.Get(CacheKeyBlog(2))
	assert.False(t, ok)
}

func TestCacheKeyBlog(t *testing.T) {
	assert.Equal(t, "blog:42", CacheKeyBlog(42))
}
