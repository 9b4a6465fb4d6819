package entry

import (
	"container/list"
	"os/user"
	"strconv"
	"sync"
)

const nameCacheSize = 256

type nameCacheEntry struct {
	key   uint32
	value string
}

// nameCache is a small LRU of id -> name lookups. Listings repeat the same
// handful of owners, and user database lookups are comparatively slow.
type nameCache struct {
	mu    sync.Mutex
	max   int
	ll    *list.List
	items map[uint32]*list.Element
}

func newNameCache(max int) *nameCache {
	return &nameCache{
		max:   max,
		ll:    list.New(),
		items: make(map[uint32]*list.Element),
	}
}

func (c *nameCache) Get(key uint32) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.ll.MoveToFront(el)
		return el.Value.(nameCacheEntry).value, true
	}
	return "", false
}

func (c *nameCache) Set(key uint32, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		el.Value = nameCacheEntry{key: key, value: value}
		c.ll.MoveToFront(el)
		return
	}

	el := c.ll.PushFront(nameCacheEntry{key: key, value: value})
	c.items[key] = el

	if c.ll.Len() > c.max {
		last := c.ll.Back()
		if last == nil {
			return
		}
		c.ll.Remove(last)
		delete(c.items, last.Value.(nameCacheEntry).key)
	}
}

var (
	userNames  = newNameCache(nameCacheSize)
	groupNames = newNameCache(nameCacheSize)
)

// lookupOwner resolves a uid to a user name, falling back to the number.
func lookupOwner(uid uint32) string {
	if name, ok := userNames.Get(uid); ok {
		return name
	}
	id := strconv.FormatUint(uint64(uid), 10)
	name := id
	if u, err := user.LookupId(id); err == nil && u.Username != "" {
		name = u.Username
	}
	userNames.Set(uid, name)
	return name
}

// lookupGroup resolves a gid to a group name, falling back to the number.
func lookupGroup(gid uint32) string {
	if name, ok := groupNames.Get(gid); ok {
		return name
	}
	id := strconv.FormatUint(uint64(gid), 10)
	name := id
	if g, err := user.LookupGroupId(id); err == nil && g.Name != "" {
		name = g.Name
	}
	groupNames.Set(gid, name)
	return name
}
