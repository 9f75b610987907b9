package registry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlcgo/go-mlcrt/value"
)

func echo(args []value.Value) (value.Value, error) {
	if len(args) == 0 {
		return value.Value{}, nil
	}
	return args[0], nil
}

func TestRegisterResolveCall(t *testing.T) {
	tab := NewTable()

	h, err := tab.Register("echo", echo)
	require.NoError(t, err)
	require.NotEqual(t, Invalid, h)

	got, ok := tab.Resolve("echo")
	require.True(t, ok)
	assert.Equal(t, h, got)

	res, err := tab.Call(h, []value.Value{value.NewStr("ping")})
	require.NoError(t, err)
	s, err := res.AsStr()
	require.NoError(t, err)
	assert.Equal(t, "ping", s)
}

func TestResolveIdempotent(t *testing.T) {
	tab := NewTable()
	h, err := tab.Register("f", echo)
	require.NoError(t, err)

	h1, ok1 := tab.Resolve("f")
	h2, ok2 := tab.Resolve("f")
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, h, h1)
	assert.Equal(t, h1, h2)
}

func TestResolveUnknown(t *testing.T) {
	tab := NewTable()
	h, ok := tab.Resolve("does_not_exist")
	assert.False(t, ok)
	assert.Equal(t, Invalid, h)
}

func TestDuplicateRegistration(t *testing.T) {
	tab := NewTable()
	_, err := tab.Register("f", echo)
	require.NoError(t, err)
	_, err = tab.Register("f", echo)
	assert.Error(t, err)
}

func TestBadRegistrations(t *testing.T) {
	tab := NewTable()
	_, err := tab.Register("", echo)
	assert.Error(t, err)
	_, err = tab.Register("f", nil)
	assert.Error(t, err)
}

func TestCallInvalidHandle(t *testing.T) {
	tab := NewTable()
	_, err := tab.Call(Invalid, nil)
	assert.Error(t, err)
	_, err = tab.Call(Handle(99), nil)
	assert.Error(t, err)
}

func TestNames(t *testing.T) {
	tab := NewTable()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		_, err := tab.Register(name, echo)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, tab.Names())
	assert.Equal(t, 3, tab.Len())
}

func TestName(t *testing.T) {
	tab := NewTable()
	h, err := tab.Register("f", echo)
	require.NoError(t, err)

	name, ok := tab.Name(h)
	require.True(t, ok)
	assert.Equal(t, "f", name)

	_, ok = tab.Name(Invalid)
	assert.False(t, ok)
}

func TestConcurrentResolveAndCall(t *testing.T) {
	tab := NewTable()
	h, err := tab.Register("echo", echo)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				got, ok := tab.Resolve("echo")
				if !ok || got != h {
					t.Errorf("Resolve(echo) = (%d, %v), want (%d, true)", got, ok, h)
					return
				}
				if _, err := tab.Call(got, []value.Value{value.NewInt(int64(j))}); err != nil {
					t.Errorf("Call: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
