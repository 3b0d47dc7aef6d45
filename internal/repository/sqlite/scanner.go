package sqlite

import (
	"database/sql"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanUser scans a single user from a database row
func ScanUser(scanner Scanner) (*User, error) {
	user := &User{}
	var googleID, avatarURL sql.NullString
	var createdAt string

	err := scanner.Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&googleID,
		&avatarURL,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if googleID.Valid {
		user.GoogleID = &googleID.String
	}
	if avatarURL.Valid {
		user.AvatarURL = &avatarURL.String
	}
	user.CreatedAt, err = ParseTimeFromDB(createdAt)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// ScanSession scans a single session from a database row
func ScanSession(scanner Scanner) (*Session, error) {
	session := &Session{}
	var expiresAt string

	err := scanner.Scan(
		&session.ID,
		&session.UserID,
		&session.Token,
		&expiresAt,
	)
	if err != nil {
		return nil, err
	}

	session.ExpiresAt, err = ParseTimeFromDB(expiresAt)
	if err != nil {
		return nil, err
	}

	return session, nil
}

// ScanUserTask scans a single task row from a database row
func ScanUserTask(scanner Scanner) (*UserTask, error) {
	task := &UserTask{}
	var description sql.NullString
	var dueDate, completedAt sql.NullString
	var createdAt string

	err := scanner.Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&description,
		&task.Points,
		&task.Completed,
		&dueDate,
		&createdAt,
		&completedAt,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		task.Description = &description.String
	}
	if dueDate.Valid {
		t, err := ParseTimeFromDB(dueDate.String)
		if err != nil {
			return nil, err
		}
		task.DueDate = &t
	}
	if completedAt.Valid {
		t, err := ParseTimeFromDB(completedAt.String)
		if err != nil {
			return nil, err
		}
		task.CompletedAt = &t
	}
	task.CreatedAt, err = ParseTimeFromDB(createdAt)
	if err != nil {
		return nil, err
	}

	return task, nil
}

// ScanUserTasks scans multiple task rows from database rows
func ScanUserTasks(rows Rows) ([]*UserTask, error) {
	var tasks []*UserTask
	for rows.Next() {
		task, err := ScanUserTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// ScanRankedUser scans a single leaderboard row from a database row
func ScanRankedUser(scanner Scanner) (*RankedUser, error) {
	ranked := &RankedUser{}
	var avatarURL sql.NullString

	err := scanner.Scan(
		&ranked.Name,
		&avatarURL,
		&ranked.TotalPoints,
		&ranked.TasksCompleted,
		&ranked.CurrentStreak,
	)
	if err != nil {
		return nil, err
	}

	if avatarURL.Valid {
		ranked.AvatarURL = &avatarURL.String
	}

	return ranked, nil
}

// ScanRankedUsers scans multiple leaderboard rows from database rows
func ScanRankedUsers(rows Rows) ([]*RankedUser, error) {
	var ranked []*RankedUser
	for rows.Next() {
		r, err := ScanRankedUser(rows)
		if err != nil {
			return nil, err
		}
		ranked = append(ranked, r)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ranked, nil
}

// ScanUserStats scans a single stats row from a database row
func ScanUserStats(scanner Scanner) (*UserStats, error) {
	stats := &UserStats{}
	var lastActivity sql.NullString

	err := scanner.Scan(
		&stats.UserID,
		&stats.TotalPoints,
		&stats.TasksCompleted,
		&stats.CurrentStreak,
		&stats.BestStreak,
		&lastActivity,
	)
	if err != nil {
		return nil, err
	}

	if lastActivity.Valid {
		t, err := ParseTimeFromDB(lastActivity.String)
		if err != nil {
			return nil, err
		}
		stats.LastActivity = &t
	}

	return stats, nil
}
