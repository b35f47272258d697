package lib

import (
	"context"
	"fmt"
	"log"
)

// Rendered view data is cached in redis under view:<path>. RevalidatePath is
// the signal sink for mutations: it marks the cached rendering stale by
// dropping the key. Emitted only after a mutation has succeeded, and failures
// are logged, never surfaced to the caller.

func viewKey(path string) string {
	return fmt.Sprintf("view:%s", path)
}

func CacheView(path string, v any) {
	rd := GetRedisClient()
	if _, err := rd.JSONSet(context.Background(), viewKey(path), "$", v).Result(); err != nil {
		log.Printf("[cache] Error caching view %s: %s\n", path, err.Error())
	}
}

// ViewCache returns the cached JSON document for path, or "" on a miss.
func ViewCache(path string) string {
	rd := GetRedisClient()
	return rd.JSONGet(context.Background(), viewKey(path)).Val()
}

func RevalidatePath(path string) {
	rd := GetRedisClient()
	if err := rd.Del(context.Background(), viewKey(path)).Err(); err != nil {
		log.Printf("[cache] Error revalidating %s: %s\n", path, err.Error())
	}
}
