package db

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/saulfrancisco-ruizacevedo/gocypher"
)

func userProps(u User) map[string]interface{} {
	return map[string]interface{}{
		"username": u.Username,
		"email":    u.Email,
		"password": u.Password,
		"role":     u.Role,
	}
}

// listQuery returns every node of label as (id, n) rows.
func listQuery(label string) (string, map[string]interface{}, error) {
	return gocypher.NewQueryBuilder().
		Match(gocypher.N("n", label)).
		Return("id(n) AS id, n").
		Build()
}

func emailTaken(ctx context.Context, s neo4j.SessionWithContext, email string) (bool, error) {
	query, params, err := gocypher.NewQueryBuilder().
		Match(gocypher.N("u", LabelUser).WithProperties(map[string]interface{}{"email": email})).
		Return("count(u) AS count").
		Build()
	if err != nil {
		return false, err
	}
	rec, err := single(ctx, s, query, params)
	if err != nil {
		return false, err
	}
	n, err := int64Value(rec, "count")
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// EmailTaken reports whether any User already uses email.
func (d *DB) EmailTaken(ctx context.Context, email string) (bool, error) {
	var taken bool
	err := d.withSession(ctx, neo4j.AccessModeRead, func(s neo4j.SessionWithContext) error {
		var err error
		taken, err = emailTaken(ctx, s, email)
		return err
	})
	return taken, err
}

// AddUser creates a User node unless the email is already in use.
// The check and the insert are separate statements.
func (d *DB) AddUser(ctx context.Context, u User) error {
	return d.withSession(ctx, neo4j.AccessModeWrite, func(s neo4j.SessionWithContext) error {
		taken, err := emailTaken(ctx, s, u.Email)
		if err != nil {
			return err
		}
		if taken {
			return ErrEmailTaken
		}
		query, params, err := gocypher.NewQueryBuilder().
			Create(gocypher.N("n", LabelUser).WithProperties(userProps(u))).
			Build()
		if err != nil {
			return err
		}
		return exec(ctx, s, query, params)
	})
}

// MatchCredentials returns the identifier of a User whose username and
// password both match exactly.
func (d *DB) MatchCredentials(ctx context.Context, username, password string) (int64, error) {
	query, params, err := gocypher.NewQueryBuilder().
		Match(gocypher.N("u", LabelUser).WithProperties(map[string]interface{}{
			"username": username,
			"password": password,
		})).
		Return("id(u) AS id").
		Build()
	if err != nil {
		return 0, err
	}
	var id int64
	err = d.withSession(ctx, neo4j.AccessModeRead, func(s neo4j.SessionWithContext) error {
		rows, err := readAll(ctx, s, query, params)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			return ErrInvalidCredentials
		}
		id, err = int64Value(rows[0], "id")
		return err
	})
	return id, err
}

// CredentialsByUsername lists stored passwords for every User named username.
func (d *DB) CredentialsByUsername(ctx context.Context, username string) ([]Credential, error) {
	query, params, err := gocypher.NewQueryBuilder().
		Match(gocypher.N("u", LabelUser).WithProperties(map[string]interface{}{"username": username})).
		Return("id(u) AS id, u.password AS password").
		Build()
	if err != nil {
		return nil, err
	}
	var out []Credential
	err = d.withSession(ctx, neo4j.AccessModeRead, func(s neo4j.SessionWithContext) error {
		rows, err := readAll(ctx, s, query, params)
		if err != nil {
			return err
		}
		for _, rec := range rows {
			id, err := int64Value(rec, "id")
			if err != nil {
				return err
			}
			pw, _ := rec.Get("password")
			stored, _ := pw.(string)
			out = append(out, Credential{UserID: id, Password: stored})
		}
		return nil
	})
	return out, err
}

// RemoveUser deletes the User and its relationships, or returns ErrNotFound.
func (d *DB) RemoveUser(ctx context.Context, id int64) error {
	return d.removeChecked(ctx, LabelUser, id)
}

// UpdateUser overwrites all four attributes of an existing User.
func (d *DB) UpdateUser(ctx context.Context, id int64, u User) error {
	return d.updateChecked(ctx, LabelUser, id,
		"n.username = $username, n.email = $email, n.password = $password, n.role = $role",
		userProps(u))
}

// AllUsers returns every User with its identifier alongside its attributes.
func (d *DB) AllUsers(ctx context.Context) ([]Entry, error) {
	return d.listEntries(ctx, LabelUser, userAttributes)
}

func (d *DB) listEntries(ctx context.Context, label string, names []string) ([]Entry, error) {
	query, params, err := listQuery(label)
	if err != nil {
		return nil, err
	}
	var out []Entry
	err = d.withSession(ctx, neo4j.AccessModeRead, func(s neo4j.SessionWithContext) error {
		rows, err := readAll(ctx, s, query, params)
		if err != nil {
			return err
		}
		out, err = entriesFromRecords(rows, names)
		return err
	})
	return out, err
}
