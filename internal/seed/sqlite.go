package seed

import (
	"fmt"
	"time"

	"github.com/debemdeboas/dallama/internal/db"
	"github.com/debemdeboas/dallama/internal/model"
)

// ReadDB loads a dataset from a database created with the seed schema.
func ReadDB(conn db.DB) (*Dataset, error) {
	ds := &Dataset{}

	rows, err := conn.Query(`SELECT id, name, nickname, location, gender FROM users ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("error querying users: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Nickname, &u.Location, &u.Gender); err != nil {
			return nil, fmt.Errorf("error scanning user: %w", err)
		}
		ds.Users = append(ds.Users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	postRows, err := conn.Query(`SELECT id, user_id, content, upvotes, downvotes, created_at FROM posts ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("error querying posts: %w", err)
	}
	defer postRows.Close()

	for postRows.Next() {
		var e model.Entry
		var created time.Time
		err := postRows.Scan(&e.Post.ID, &e.Post.Author, &e.Post.Content, &e.Tally.Upvotes, &e.Tally.Downvotes, &created)
		if err != nil {
			return nil, fmt.Errorf("error scanning post: %w", err)
		}
		e.Post.CreatedDate = created.UTC()
		e.Post.ModifiedDate = e.Post.CreatedDate
		ds.Posts = append(ds.Posts, e)
	}
	if err := postRows.Err(); err != nil {
		return nil, err
	}

	return ds, nil
}

// WriteDB replaces the contents of conn with ds in a single transaction.
func WriteDB(conn db.DB, ds *Dataset) error {
	tx, err := conn.Get().Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM posts; DELETE FROM users;`); err != nil {
		return fmt.Errorf("error clearing seed tables: %w", err)
	}

	for i, u := range ds.Users {
		_, err := tx.Exec(
			`INSERT INTO users (id, name, nickname, location, gender, position) VALUES (?, ?, ?, ?, ?, ?)`,
			u.ID, u.Name, u.Nickname, u.Location, u.Gender, i,
		)
		if err != nil {
			return fmt.Errorf("error saving user %d: %w", u.ID, err)
		}
	}

	for i, e := range ds.Posts {
		_, err := tx.Exec(
			`INSERT INTO posts (id, user_id, content, upvotes, downvotes, created_at, position) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			e.Post.ID, e.Post.Author, e.Post.Content, e.Tally.Upvotes, e.Tally.Downvotes, e.Post.ModifiedDate.UTC(), i,
		)
		if err != nil {
			return fmt.Errorf("error saving post %d: %w", e.Post.ID, err)
		}
	}

	return tx.Commit()
}
