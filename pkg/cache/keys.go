package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/mindweave/mindweave/pkg/layout"
	"github.com/mindweave/mindweave/pkg/mindmap"
)

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	// Full SHA-256 (64 hex chars) to prevent collisions.
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// GraphHash computes a content hash of a graph, covering node identities,
// positions, pin state, and the edge list. Two graphs with identical hashes
// lay out identically under the same config.
func GraphHash(g mindmap.Graph) string {
	data, _ := json.Marshal(g)
	return Hash(data)
}

// LayoutKey builds the cache key for a layout result: the graph content,
// the designated root, and every layout tunable participate, so no stale
// geometry can be served after a config change.
func LayoutKey(g mindmap.Graph, rootID string, cfg layout.Config) string {
	return hashKey("layout", GraphHash(g), rootID, cfg)
}
