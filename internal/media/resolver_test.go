package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver("https://media.example.com/")

	assert.Equal(t, "https://media.example.com/diya.jpg", r.Resolve("diya.jpg"))
	assert.Equal(t, "https://media.example.com/diya.jpg", r.Resolve("/diya.jpg"))
	assert.Equal(t, "https://cdn.other.com/x.jpg", r.Resolve("https://cdn.other.com/x.jpg"))
	assert.Equal(t, "http://cdn.other.com/x.jpg", r.Resolve("http://cdn.other.com/x.jpg"))
	assert.Equal(t, "", r.Resolve(""))
}

func TestResolver_ResolveAll(t *testing.T) {
	r := NewResolver("https://media.example.com")

	assert.Nil(t, r.ResolveAll(nil))

	out := r.ResolveAll([]string{"a.jpg", "https://x.com/b.jpg"})
	assert.Equal(t, []string{
		"https://media.example.com/a.jpg",
		"https://x.com/b.jpg",
	}, out)
}
