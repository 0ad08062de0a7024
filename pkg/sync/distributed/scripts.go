package distributed

import "github.com/redis/go-redis/v9"

// Both scripts act only when the key still holds the caller's token, so an
// expired holder can never release or extend a lock someone else acquired.

const luaRelease = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`

const luaExtend = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0
`

var (
	releaseScript = redis.NewScript(luaRelease)
	extendScript  = redis.NewScript(luaExtend)
)
