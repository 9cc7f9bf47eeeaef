package uid

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/labstack/gommon/log"
)

var (
	node *snowflake.Node
	once sync.Once
)

func Init(machineID int64) {
	once.Do(func() {
		var err error
		node, err = snowflake.NewNode(machineID)
		if err != nil {
			log.Fatalf("failed to initialize snowflake node: %v", err)
		}
	})
}

func Generate() int64 {
	if node == nil {
		log.Fatalf("uid package not initialized")
	}
	return node.Generate().Int64()
}

// NewID builds an opaque record id from an entity prefix and a fresh
// snowflake ("p1834...", "u1834...", "log1834...").
func NewID(prefix string) string {
	return fmt.Sprintf("%s%d", prefix, Generate())
}
