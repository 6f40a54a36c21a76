package repository

import (
	"database/sql"
	"fmt"

	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/apperrors"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/model"
)

// UserRepository provides read access to advisors and their team membership.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository with the provided database connection.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row rowScanner) (model.User, error) {
	var u model.User
	var phone, leader sql.NullString

	if err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &phone, &leader); err != nil {
		return model.User{}, err
	}
	u.NumeroTelefono = phone.String
	u.TeamLeaderID = leader.String

	return u, nil
}

// GetUser retrieves a single user by ID.
// Returns apperrors.ErrUserNotFound if it does not exist.
func (r *UserRepository) GetUser(userID string) (model.User, error) {
	query := `
		SELECT id, first_name, last_name, email, numero_telefono, team_leader_id
		FROM "user"
		WHERE id = ?
	`

	u, err := scanUser(r.db.QueryRow(query, userID))
	if err == sql.ErrNoRows {
		return model.User{}, apperrors.ErrUserNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to query user: %w", err)
	}

	return u, nil
}

// GetTeamMembers retrieves every user whose team leader is leaderID.
// Returns an empty slice if the leader has no team.
func (r *UserRepository) GetTeamMembers(leaderID string) ([]model.User, error) {
	query := `
		SELECT id, first_name, last_name, email, numero_telefono, team_leader_id
		FROM "user"
		WHERE team_leader_id = ? AND id != ?
		ORDER BY last_name ASC, first_name ASC
	`

	rows, err := r.db.Query(query, leaderID, leaderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user table: %w", err)
	}
	defer rows.Close()

	members := []model.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user table results: %w", err)
		}
		members = append(members, u)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user table: %w", err)
	}

	return members, nil
}
