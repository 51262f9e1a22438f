package cache

import (
	"context"
	"log"
	"sync"
	"time"
)

// localRevoked is the fallback revocation set used when Redis is unavailable.
// Entries map jti -> expiry; expired entries are pruned lazily on lookup.
// Like the rest of the process memory it does not survive restarts, which is
// why Redis is preferred when configured.
var (
	localRevokedMu sync.Mutex
	localRevoked   = map[string]time.Time{}
)

// RevokeToken adds a token identifier to the revocation store for the
// remainder of the token's lifetime. Safe for concurrent use.
func RevokeToken(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// Already expired; nothing to revoke.
		return nil
	}

	if client != nil {
		if err := client.Set(ctx, RevokedKey(jti), "1", ttl).Err(); err == nil {
			return nil
		} else {
			log.Printf("Redis revocation write failed, falling back to process memory: %v", err)
		}
	}

	localRevokedMu.Lock()
	defer localRevokedMu.Unlock()
	localRevoked[jti] = time.Now().Add(ttl)
	return nil
}

// IsTokenRevoked reports whether a token identifier is in the revocation store.
// Safe for concurrent use.
func IsTokenRevoked(ctx context.Context, jti string) bool {
	if jti == "" {
		return false
	}

	if client != nil {
		if n, err := client.Exists(ctx, RevokedKey(jti)).Result(); err == nil {
			if n > 0 {
				return true
			}
			// Fall through to the local set: a revocation may have landed
			// there while Redis was briefly unreachable.
		}
	}

	localRevokedMu.Lock()
	defer localRevokedMu.Unlock()
	expiry, ok := localRevoked[jti]
	if !ok {
		return false
	}
	if time.Now().After(expiry) {
		delete(localRevoked, jti)
		return false
	}
	return true
}

// ResetLocalRevocations clears the in-process revocation set. Intended for tests.
func ResetLocalRevocations() {
	localRevokedMu.Lock()
	defer localRevokedMu.Unlock()
	localRevoked = map[string]time.Time{}
}
