package socket

import (
	"sync"
	"time"

	"github.com/aidarkhanov/nanoid/v2"
	"github.com/segmentio/fasthash/fnv1a"
)

const CONCURRENCY = 32
const VALID_NANOID_CHAR = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
const MAX_WS_CONNECTION_TIME = 1 * time.Hour
const SEND_BUFFER = 16

type conc_ws_id_table struct {
	table map[string]*client
	sync.RWMutex
}
type conc_ws_id_table_shards []*conc_ws_id_table

func (ct conc_ws_id_table_shards) get_shard(id string) *conc_ws_id_table {
	return ct[fnv1a.HashString32(id)%CONCURRENCY]
}

func new_ws_id_table() conc_ws_id_table_shards {
	shards := make([]*conc_ws_id_table, CONCURRENCY)

	for i := 0; uint32(i) < CONCURRENCY; i++ {
		shards[i] = &conc_ws_id_table{table: make(map[string]*client)}
	}

	return shards
}

func (ct conc_ws_id_table_shards) create_connection(wallet string) (*client, error) {

	WSID, err := nanoid.GenerateString(VALID_NANOID_CHAR, 10)
	if err != nil {
		return nil, err
	}

	shard := ct.get_shard(WSID)

	shard.Lock()

	for {
		if _, exists := shard.table[WSID]; !exists {
			break
		}
		shard.Unlock()
		WSID, err = nanoid.GenerateString(VALID_NANOID_CHAR, 10)
		if err != nil {
			return nil, err
		}
		shard = ct.get_shard(WSID)
		shard.Lock()
	}

	c := new_client(WSID, wallet)
	shard.table[WSID] = c

	shard.Unlock()

	return c, nil
}

func (ct conc_ws_id_table_shards) delete_connection(WSID string) *client {

	shard := ct.get_shard(WSID)

	shard.Lock()

	c := shard.table[WSID]
	delete(shard.table, WSID)

	shard.Unlock()

	return c
}

func (ct conc_ws_id_table_shards) get_connection(WSID string) *client {

	shard := ct.get_shard(WSID)

	shard.RLock()
	defer shard.RUnlock()

	return shard.table[WSID]
}

func (ct conc_ws_id_table_shards) count() int {
	n := 0
	for _, shard := range ct {
		shard.RLock()
		n += len(shard.table)
		shard.RUnlock()
	}
	return n
}
