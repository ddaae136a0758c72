package items

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/gunsmith/internal/domain/weapons"
	gserr "github.com/KirkDiggler/gunsmith/internal/errors"
)

const (
	weaponIndexKey = "catalog:weapons"
	modIndexKey    = "catalog:mods"
)

func weaponKey(id string) string {
	return fmt.Sprintf("weapon:%s", id)
}

func modKey(id string) string {
	return fmt.Sprintf("mod:%s", id)
}

// redisRepo stores each record as JSON under its own key and keeps catalog
// order in a list of ids per record kind.
type redisRepo struct {
	client redis.UniversalClient
}

// NewRedis creates a Redis-backed catalog store
func NewRedis(client redis.UniversalClient) Store {
	if client == nil {
		panic("redis client is required")
	}

	return &redisRepo{
		client: client,
	}
}

func (r *redisRepo) ListWeapons(ctx context.Context) ([]*weapons.Weapon, error) {
	result := make([]*weapons.Weapon, 0)
	err := r.list(ctx, weaponIndexKey, weaponKey, func(data string) error {
		var w weapons.Weapon
		if err := json.Unmarshal([]byte(data), &w); err != nil {
			return err
		}
		result = append(result, &w)
		return nil
	})
	if err != nil {
		return nil, gserr.Wrap(err, "failed to list weapons")
	}

	return result, nil
}

func (r *redisRepo) ListMods(ctx context.Context) ([]*weapons.WeaponMod, error) {
	result := make([]*weapons.WeaponMod, 0)
	err := r.list(ctx, modIndexKey, modKey, func(data string) error {
		var m weapons.WeaponMod
		if err := json.Unmarshal([]byte(data), &m); err != nil {
			return err
		}
		result = append(result, &m)
		return nil
	})
	if err != nil {
		return nil, gserr.Wrap(err, "failed to list mods")
	}

	return result, nil
}

func (r *redisRepo) GetWeapon(ctx context.Context, id string) (*weapons.Weapon, error) {
	if id == "" {
		return nil, gserr.InvalidArgument("weapon ID is required")
	}

	data, err := r.client.Get(ctx, weaponKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, gserr.NotFoundf("weapon '%s' not found", id).WithMeta("weapon_id", id)
		}
		return nil, gserr.WrapWithCode(err, gserr.CodeUnavailable, "failed to get weapon from Redis")
	}

	var w weapons.Weapon
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, gserr.Wrapf(err, "failed to unmarshal weapon %s", id)
	}

	return &w, nil
}

func (r *redisRepo) GetMod(ctx context.Context, id string) (*weapons.WeaponMod, error) {
	if id == "" {
		return nil, gserr.InvalidArgument("mod ID is required")
	}

	data, err := r.client.Get(ctx, modKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, gserr.NotFoundf("mod '%s' not found", id).WithMeta("mod_id", id)
		}
		return nil, gserr.WrapWithCode(err, gserr.CodeUnavailable, "failed to get mod from Redis")
	}

	var m weapons.WeaponMod
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, gserr.Wrapf(err, "failed to unmarshal mod %s", id)
	}

	return &m, nil
}

// Seed replaces both indexes in a single transaction. Records that drop out
// of the catalog are left behind under their keys but are no longer listed.
func (r *redisRepo) Seed(ctx context.Context, c *weapons.Catalog) error {
	if c == nil {
		return gserr.InvalidArgument("catalog cannot be nil")
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, weaponIndexKey, modIndexKey)

	weaponIDs := make([]any, 0, len(c.Weapons))
	for _, w := range c.Weapons {
		data, err := json.Marshal(w)
		if err != nil {
			return gserr.Wrapf(err, "failed to marshal weapon %s", w.ID)
		}
		pipe.Set(ctx, weaponKey(w.ID), string(data), 0)
		weaponIDs = append(weaponIDs, w.ID)
	}
	if len(weaponIDs) > 0 {
		pipe.RPush(ctx, weaponIndexKey, weaponIDs...)
	}

	modIDs := make([]any, 0, len(c.Mods))
	for _, m := range c.Mods {
		data, err := json.Marshal(m)
		if err != nil {
			return gserr.Wrapf(err, "failed to marshal mod %s", m.ID)
		}
		pipe.Set(ctx, modKey(m.ID), string(data), 0)
		modIDs = append(modIDs, m.ID)
	}
	if len(modIDs) > 0 {
		pipe.RPush(ctx, modIndexKey, modIDs...)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return gserr.WrapWithCode(err, gserr.CodeUnavailable, "failed to seed catalog in Redis")
	}

	return nil
}

// list reads the ids in indexKey and hands each stored record to decode in order
func (r *redisRepo) list(ctx context.Context, indexKey string, keyFn func(string) string, decode func(string) error) error {
	ids, err := r.client.LRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return gserr.WrapWithCode(err, gserr.CodeUnavailable, "failed to read catalog index")
	}
	if len(ids) == 0 {
		return nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = keyFn(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return gserr.WrapWithCode(err, gserr.CodeUnavailable, "failed to read catalog records")
	}

	for i, v := range values {
		data, ok := v.(string)
		if !ok {
			return gserr.Internalf("catalog index %s lists %s but the record is missing", indexKey, ids[i])
		}
		if err := decode(data); err != nil {
			return gserr.Wrapf(err, "failed to unmarshal %s", keys[i])
		}
	}

	return nil
}
