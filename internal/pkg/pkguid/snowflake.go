package pkguid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/bwmarrin/snowflake"
)

// epochMillis is 2026-01-01T00:00:00Z.
const epochMillis int64 = 1767225600000

const maxNode int64 = 1<<10 - 1

var setEpoch sync.Once

// Snowflake generates 63-bit ids from a single node.
type Snowflake struct {
	node *snowflake.Node
}

// NewSnowflake builds a generator for node. A negative node picks a random
// node id, which is fine for single-instance deployments.
func NewSnowflake(node int64) (*Snowflake, error) {
	if node < 0 {
		var err error
		if node, err = randomNode(); err != nil {
			return nil, err
		}
	}
	if node > maxNode {
		return nil, fmt.Errorf("snowflake node %d out of range 0..%d", node, maxNode)
	}

	setEpoch.Do(func() { snowflake.Epoch = epochMillis })

	n, err := snowflake.NewNode(node)
	if err != nil {
		return nil, err
	}
	return &Snowflake{node: n}, nil
}

func (s *Snowflake) Generate() int64 {
	return s.node.Generate().Int64()
}

func randomNode() (int64, error) {
	var buf [2]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint16(buf[:])) & maxNode, nil
}
