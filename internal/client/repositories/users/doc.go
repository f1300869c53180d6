// Package users provides the local cache of remote users.
//
// # Overview
//
// SQLiteRepository stores users in the users table keyed by id. The table
// is a lossy projection of models.User: street, geo and company are not
// persisted, and every user read back carries Partial=true. The conversion
// is done by toRow and fromRow and nowhere else.
//
// ReplaceAll upserts a whole batch inside one transaction, so readers see
// either the previous snapshot or the complete new one.
//
// Typical Usage
//
//	repo := users.NewSQLiteRepository(db)
//	_ = repo.ReplaceAll(ctx, fetched)
//	list, _ := repo.GetAll(ctx)
//	u, _ := repo.GetByID(ctx, id) // nil, nil when absent
package users
