package cachectrl

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/zeebo/xxh3"
)

func OptIn(ctx *fiber.Ctx, t time.Time) {
	offset := time.Minute
	OptInCustom(ctx, t, offset)
}

func OptInCustom(ctx *fiber.Ctx, t time.Time, offset time.Duration) {
	ctx.Set(fiber.HeaderCacheControl, "public, max-age="+strconv.Itoa(int(offset.Seconds())))
	ctx.Set(fiber.HeaderExpires, t.Add(offset).UTC().Format(time.RFC1123))

	ctx.Response().Header.SetLastModified(t)
}

func OptOut(ctx *fiber.Ctx) {
	ctx.Set(fiber.HeaderCacheControl, "no-cache, no-store, must-revalidate")
	ctx.Set(fiber.HeaderPragma, "no-cache")
	ctx.Set(fiber.HeaderExpires, "0")
}

// ETag derives a weak validator from parts, typically the dataset fingerprint and the filter key.
func ETag(parts ...string) string {
	return fmt.Sprintf(`W/"%016x"`, xxh3.HashString(strings.Join(parts, "\x00")))
}

// SetETag sets the ETag header of the response.
func SetETag(ctx *fiber.Ctx, parts ...string) {
	ctx.Set(fiber.HeaderETag, ETag(parts...))
}

// Fresh reports whether the client's If-None-Match matches the response's ETag.
func Fresh(ctx *fiber.Ctx) bool {
	etag := string(ctx.Response().Header.Peek(fiber.HeaderETag))
	if etag == "" {
		return false
	}
	for _, candidate := range strings.Split(ctx.Get(fiber.HeaderIfNoneMatch), ",") {
		if c := strings.TrimSpace(candidate); c == etag || c == "*" {
			return true
		}
	}
	return false
}
