package db

import (
	"context"
)

const upsertChampion = `
INSERT INTO champions (id, key, name, title, image_url, tags, patch_version)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    key = excluded.key,
    name = excluded.name,
    title = excluded.title,
    image_url = excluded.image_url,
    tags = excluded.tags,
    patch_version = excluded.patch_version
`

type UpsertChampionParams = Champion

func (q *Queries) UpsertChampion(ctx context.Context, arg UpsertChampionParams) error {
	_, err := q.db.ExecContext(ctx, upsertChampion,
		arg.ID,
		arg.Key,
		arg.Name,
		arg.Title,
		arg.ImageUrl,
		arg.Tags,
		arg.PatchVersion,
	)
	return err
}

const getChampion = `
SELECT id, key, name, title, image_url, tags, patch_version
FROM champions
WHERE id = ?
`

func (q *Queries) GetChampion(ctx context.Context, id int64) (Champion, error) {
	row := q.db.QueryRowContext(ctx, getChampion, id)
	var i Champion
	err := row.Scan(
		&i.ID,
		&i.Key,
		&i.Name,
		&i.Title,
		&i.ImageUrl,
		&i.Tags,
		&i.PatchVersion,
	)
	return i, err
}

const listChampions = `
SELECT id, key, name, title, image_url, tags, patch_version
FROM champions
ORDER BY name
`

func (q *Queries) ListChampions(ctx context.Context) ([]Champion, error) {
	rows, err := q.db.QueryContext(ctx, listChampions)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Champion
	for rows.Next() {
		var i Champion
		if err := rows.Scan(
			&i.ID,
			&i.Key,
			&i.Name,
			&i.Title,
			&i.ImageUrl,
			&i.Tags,
			&i.PatchVersion,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const upsertItem = `
INSERT INTO items (id, name, description, image_url, gold, tags, patch_version)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    name = excluded.name,
    description = excluded.description,
    image_url = excluded.image_url,
    gold = excluded.gold,
    tags = excluded.tags,
    patch_version = excluded.patch_version
`

type UpsertItemParams = Item

func (q *Queries) UpsertItem(ctx context.Context, arg UpsertItemParams) error {
	_, err := q.db.ExecContext(ctx, upsertItem,
		arg.ID,
		arg.Name,
		arg.Description,
		arg.ImageUrl,
		arg.Gold,
		arg.Tags,
		arg.PatchVersion,
	)
	return err
}

const upsertRune = `
INSERT INTO runes (id, name, description, image_url, tree_id, tree_name, slot, patch_version)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    name = excluded.name,
    description = excluded.description,
    image_url = excluded.image_url,
    tree_id = excluded.tree_id,
    tree_name = excluded.tree_name,
    slot = excluded.slot,
    patch_version = excluded.patch_version
`

type UpsertRuneParams = Rune

func (q *Queries) UpsertRune(ctx context.Context, arg UpsertRuneParams) error {
	_, err := q.db.ExecContext(ctx, upsertRune,
		arg.ID,
		arg.Name,
		arg.Description,
		arg.ImageUrl,
		arg.TreeID,
		arg.TreeName,
		arg.Slot,
		arg.PatchVersion,
	)
	return err
}
