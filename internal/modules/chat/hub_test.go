package chat

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHub_RegisterUnregister(t *testing.T) {
	h := NewHub()

	h.Register("u1", false, nil)
	h.Register("adm", true, nil)

	assert.True(t, h.IsOnline("u1"))
	assert.True(t, h.IsOnline("adm"))
	assert.Equal(t, 2, h.OnlineCount())

	h.Unregister("u1")
	assert.False(t, h.IsOnline("u1"))
	assert.Equal(t, 1, h.OnlineCount())
}

func TestHub_SendToOfflineUser(t *testing.T) {
	h := NewHub()

	assert.False(t, h.SendToUser("ghost", "hello"))
}

func TestHub_ConcurrentAccess(t *testing.T) {
	h := NewHub()
	h.Register("adm", true, nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			h.SendToAdmins("ping")
		}()
		go func() {
			defer wg.Done()
			h.SendToUser("u1", "ping")
		}()
		go func() {
			defer wg.Done()
			h.Register("u1", false, nil)
			h.Unregister("u1")
		}()
	}
	wg.Wait()

	assert.True(t, h.IsOnline("adm"))
}

func TestHub_Close(t *testing.T) {
	h := NewHub()
	h.Register("u1", false, nil)
	h.Register("u2", true, nil)

	h.Close()
	assert.Equal(t, 0, h.OnlineCount())
}
