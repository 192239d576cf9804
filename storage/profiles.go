package storage

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/gocql/gocql"
	"go.uber.org/zap"
)

// Profile is the off-chain profile of a wallet
type Profile struct {
	WalletAddress string
	Username      string
	DisplayName   string
	// Avatar holds a plain file name; uploaded images live in the avatars bucket
	Avatar    string
	HasAvatar bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NormalizeUsername case-folds a username for storage and comparison
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// profileTable is the row access Save is built on. claim reports whether
// the call created the claim, as opposed to finding one already held by wallet.
type profileTable interface {
	get(ctx context.Context, wallet string) (*Profile, error)
	put(ctx context.Context, p *Profile) error
	claim(ctx context.Context, username, wallet string, now time.Time) (bool, error)
	release(ctx context.Context, username, wallet string) error
}

// ProfileRepo stores profiles and username claims
type ProfileRepo struct {
	session *gocql.Session
	table   profileTable
	now     func() time.Time
}

func NewProfileRepo(session *gocql.Session) *ProfileRepo {
	return &ProfileRepo{session: session, table: cqlProfiles{session}, now: time.Now}
}

const profileColumns = `wallet_address, username, display_name, avatar, has_avatar, created, updated`

func scanProfile(scan func(dest ...interface{}) bool) (*Profile, bool) {
	p := new(Profile)
	ok := scan(&p.WalletAddress, &p.Username, &p.DisplayName, &p.Avatar, &p.HasAvatar, &p.CreatedAt, &p.UpdatedAt)
	return p, ok
}

// Get returns the profile of wallet or ErrNotFound
func (r *ProfileRepo) Get(ctx context.Context, wallet string) (*Profile, error) {
	return r.table.get(ctx, wallet)
}

// Save upserts p. The username is case-folded and claimed through a
// lightweight transaction, so two wallets cannot hold the same name. A rename
// releases the previous claim, and a failed write releases the new one.
// Avatar fields left empty keep the stored ones.
func (r *ProfileRepo) Save(ctx context.Context, p *Profile) (*Profile, error) {
	p.Username = NormalizeUsername(p.Username)

	prev, err := r.table.get(ctx, p.WalletAddress)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	now := r.now().UTC()
	p.CreatedAt, p.UpdatedAt = now, now
	if prev != nil {
		p.CreatedAt = prev.CreatedAt
		if !p.HasAvatar && p.Avatar == "" {
			p.Avatar, p.HasAvatar = prev.Avatar, prev.HasAvatar
		}
	}

	claimed := false
	if prev == nil || prev.Username != p.Username {
		if claimed, err = r.table.claim(ctx, p.Username, p.WalletAddress, now); err != nil {
			return nil, err
		}
	}

	if err := r.table.put(ctx, p); err != nil {
		if claimed {
			if rerr := r.table.release(ctx, p.Username, p.WalletAddress); rerr != nil {
				zap.L().Warn("username claim left behind", zap.String("username", p.Username), zap.Error(rerr))
			}
		}
		return nil, err
	}

	if prev != nil && prev.Username != "" && prev.Username != p.Username {
		if err := r.table.release(ctx, prev.Username, p.WalletAddress); err != nil {
			return nil, err
		}
	}
	return p, nil
}

type cqlProfiles struct {
	session *gocql.Session
}

func (t cqlProfiles) get(ctx context.Context, wallet string) (*Profile, error) {
	p := new(Profile)
	err := t.session.Query(`
		SELECT `+profileColumns+` FROM profiles WHERE wallet_address = ? LIMIT 1;`,
		wallet,
	).WithContext(ctx).Scan(&p.WalletAddress, &p.Username, &p.DisplayName, &p.Avatar, &p.HasAvatar, &p.CreatedAt, &p.UpdatedAt)

	if err == gocql.ErrNotFound {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return p, nil
}

func (t cqlProfiles) put(ctx context.Context, p *Profile) error {
	return t.session.Query(`
		INSERT INTO profiles (`+profileColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?);`,
		p.WalletAddress, p.Username, p.DisplayName, p.Avatar, p.HasAvatar, p.CreatedAt, p.UpdatedAt,
	).WithContext(ctx).Exec()
}

func (t cqlProfiles) claim(ctx context.Context, username, wallet string, now time.Time) (bool, error) {
	existing := make(map[string]interface{})
	applied, err := t.session.Query(`
		INSERT INTO usernames (username, wallet_address, claimed) VALUES (?, ?, ?)
		IF NOT EXISTS;`,
		username, wallet, now,
	).WithContext(ctx).MapScanCAS(existing)
	if err != nil {
		return false, err
	}

	if !applied {
		if owner, _ := existing["wallet_address"].(string); owner != wallet {
			return false, ErrUsernameTaken
		}
	}
	return applied, nil
}

func (t cqlProfiles) release(ctx context.Context, username, wallet string) error {
	_, err := t.session.Query(`
		DELETE FROM usernames WHERE username = ?
		IF wallet_address = ?;`,
		username, wallet,
	).WithContext(ctx).MapScanCAS(make(map[string]interface{}))
	return err
}

// List returns every profile ordered by username
func (r *ProfileRepo) List(ctx context.Context) ([]Profile, error) {
	iter := r.session.Query(`SELECT ` + profileColumns + ` FROM profiles;`).WithContext(ctx).Iter()

	profiles := make([]Profile, 0)
	for {
		p, ok := scanProfile(iter.Scan)
		if !ok {
			break
		}
		profiles = append(profiles, *p)
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}

	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].Username < profiles[j].Username
	})
	return profiles, nil
}

// Search returns profiles whose username or display name contains query,
// case-insensitively, skipping exclude
func (r *ProfileRepo) Search(ctx context.Context, query, exclude string, limit int) ([]Profile, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	return MatchProfiles(all, query, exclude, limit), nil
}

// MatchProfiles filters profiles the way Search does. limit <= 0 means no limit.
func MatchProfiles(profiles []Profile, query, exclude string, limit int) []Profile {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Profile, 0)
	for _, p := range profiles {
		if p.WalletAddress == exclude {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(p.Username), q) && !strings.Contains(strings.ToLower(p.DisplayName), q) {
			continue
		}
		out = append(out, p)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
