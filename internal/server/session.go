package server

import (
	"fmt"
	"sync"

	"github.com/ironsheep/region-tools-mcp/internal/imaging"
	"github.com/ironsheep/region-tools-mcp/internal/regions"
)

// session is the segmented state of one image file.
type session struct {
	engine *regions.Engine
	buf    *regions.PixelBuffer

	// mu guards highlighter; the engine has its own lock.
	mu          sync.Mutex
	highlighter *imaging.Highlighter
	regionCount int
}

// sessionStore keeps one session per image path, segmenting an image the
// first time a tool refers to it.
type sessionStore struct {
	mu       sync.RWMutex
	cache    *imaging.ImageCache
	sessions map[string]*session
}

func newSessionStore(cache *imaging.ImageCache) *sessionStore {
	return &sessionStore{
		cache:    cache,
		sessions: make(map[string]*session),
	}
}

// get returns the session for path, loading and segmenting the image if
// needed.
func (st *sessionStore) get(path string) (*session, error) {
	st.mu.RLock()
	if sess, ok := st.sessions[path]; ok {
		st.mu.RUnlock()
		return sess, nil
	}
	st.mu.RUnlock()

	st.mu.Lock()
	defer st.mu.Unlock()

	// Double-check after acquiring write lock
	if sess, ok := st.sessions[path]; ok {
		return sess, nil
	}

	sess, err := st.open(path)
	if err != nil {
		return nil, err
	}
	st.sessions[path] = sess
	return sess, nil
}

// reload drops any state held for path and segments the file again.
func (st *sessionStore) reload(path string) (*session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	delete(st.sessions, path)
	st.cache.Evict(path)

	sess, err := st.open(path)
	if err != nil {
		return nil, err
	}
	st.sessions[path] = sess
	return sess, nil
}

// len returns the number of open sessions.
func (st *sessionStore) len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

func (st *sessionStore) open(path string) (*session, error) {
	buf, err := imaging.LoadBuffer(st.cache, path)
	if err != nil {
		return nil, err
	}

	engine, err := regions.NewEngine()
	if err != nil {
		return nil, err
	}
	n, err := engine.RestoreRegions(buf)
	if err != nil {
		return nil, fmt.Errorf("failed to segment image: %w", err)
	}

	return &session{
		engine:      engine,
		buf:         buf,
		highlighter: imaging.NewHighlighter(buf, imaging.DefaultActive, imaging.DefaultInactive),
		regionCount: n,
	}, nil
}
