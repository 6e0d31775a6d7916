package intro

import "sync"

// InputLock is the page-level scroll/input lock held while the overlay is active
// Multiple holders are counted; each release func is effective once
type InputLock struct {
	mu      sync.Mutex
	holders int
}

// Acquire takes the lock and returns its release func
func (l *InputLock) Acquire() (release func()) {
	l.mu.Lock()
	l.holders++
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			l.holders--
			l.mu.Unlock()
		})
	}
}

// Locked reports whether any holder remains
func (l *InputLock) Locked() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.holders > 0
}
