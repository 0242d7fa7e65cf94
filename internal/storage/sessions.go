package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/forja-fit/forja/internal/models"
)

// GetSessionByID loads a full session graph: the session row, its
// exercises and sets in explicit order_index order, and its groups with
// member ids in membership order.
func (s *Storage) GetSessionByID(sessionID string) (*models.Session, error) {
	var sess models.Session
	var rawStatus, startTime string
	var endTime, notes sql.NullString
	var templateID sql.NullString

	err := s.DB.QueryRow(`
        SELECT id, template_id, status, start_time, end_time, notes
        FROM sessions
        WHERE id = ?`, sessionID).Scan(
		&sess.ID, &templateID, &rawStatus, &startTime, &endTime, &notes)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	sess.TemplateID = templateID.String
	sess.Notes = notes.String
	status, ok := models.ParseSessionStatus(rawStatus)
	if !ok {
		return nil, fmt.Errorf("session %s has unknown status %q", sessionID, rawStatus)
	}
	sess.Status = status
	sess.StartTime, _ = time.Parse(time.RFC3339, startTime)
	if endTime.Valid && endTime.String != "" {
		sess.EndTime, _ = time.Parse(time.RFC3339, endTime.String)
	}

	sess.Exercises, err = s.getSessionExercises(sessionID)
	if err != nil {
		return nil, err
	}
	sess.Groups, err = s.getSessionGroups(sessionID)
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *Storage) getSessionExercises(sessionID string) ([]*models.SessionExercise, error) {
	rows, err := s.DB.Query(`
        SELECT id, catalog_id, group_id, order_index, finished, note, rest_seconds
        FROM session_exercises
        WHERE session_id = ?
        ORDER BY order_index`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session exercises: %w", err)
	}
	defer rows.Close()

	var exercises []*models.SessionExercise
	for rows.Next() {
		var ex models.SessionExercise
		var groupID, note sql.NullString
		var finished int
		if err := rows.Scan(&ex.ID, &ex.CatalogID, &groupID, &ex.OrderIndex, &finished, &note, &ex.RestSeconds); err != nil {
			return nil, fmt.Errorf("failed to scan session exercise: %w", err)
		}
		ex.GroupID = groupID.String
		ex.Note = note.String
		ex.Finished = finished != 0
		exercises = append(exercises, &ex)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, ex := range exercises {
		sets, err := s.getExerciseSets(ex.ID)
		if err != nil {
			return nil, err
		}
		ex.Sets = sets
	}
	return exercises, nil
}

func (s *Storage) getExerciseSets(exerciseID string) ([]*models.ExerciseSet, error) {
	rows, err := s.DB.Query(`
        SELECT id, order_index, weight, reps, duration_seconds, completed, warmup, rest_seconds
        FROM exercise_sets
        WHERE exercise_id = ?
        ORDER BY order_index`, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("failed to load sets: %w", err)
	}
	defer rows.Close()

	var sets []*models.ExerciseSet
	for rows.Next() {
		var st models.ExerciseSet
		var completed, warmup int
		if err := rows.Scan(&st.ID, &st.OrderIndex, &st.Weight, &st.Reps, &st.DurationSeconds, &completed, &warmup, &st.RestSeconds); err != nil {
			return nil, fmt.Errorf("failed to scan set: %w", err)
		}
		st.Completed = completed != 0
		st.Warmup = warmup != 0
		sets = append(sets, &st)
	}
	return sets, rows.Err()
}

func (s *Storage) getSessionGroups(sessionID string) ([]*models.ExerciseGroup, error) {
	rows, err := s.DB.Query(`
        SELECT id, group_index, kind, current_round, total_rounds, completed, rest_seconds
        FROM exercise_groups
        WHERE session_id = ?
        ORDER BY group_index`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load groups: %w", err)
	}
	defer rows.Close()

	var groups []*models.ExerciseGroup
	for rows.Next() {
		var g models.ExerciseGroup
		var rawKind string
		var completed int
		if err := rows.Scan(&g.ID, &g.GroupIndex, &rawKind, &g.CurrentRound, &g.TotalRounds, &completed, &g.RestSeconds); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		kind, ok := models.ParseGroupKind(rawKind)
		if !ok {
			return nil, fmt.Errorf("group %s has unknown kind %q", g.ID, rawKind)
		}
		g.Kind = kind
		g.Completed = completed != 0
		groups = append(groups, &g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, g := range groups {
		memberRows, err := s.DB.Query(`
            SELECT exercise_id FROM group_member_refs
            WHERE group_id = ?
            ORDER BY member_index`, g.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load group members: %w", err)
		}
		for memberRows.Next() {
			var id string
			if err := memberRows.Scan(&id); err != nil {
				memberRows.Close()
				return nil, err
			}
			g.ExerciseIDs = append(g.ExerciseIDs, id)
		}
		if err := memberRows.Err(); err != nil {
			memberRows.Close()
			return nil, err
		}
		memberRows.Close()
	}
	return groups, nil
}

// GetSessionsByDate returns sessions started on the given local date
// (formatted as "DD/MM/YY").
func (s *Storage) GetSessionsByDate(dateStr string) ([]*models.Session, error) {
	day, err := time.ParseInLocation("02/01/06", dateStr, time.Local)
	if err != nil {
		return nil, fmt.Errorf("failed to parse date: %w", err)
	}
	from := day.UTC().Format(time.RFC3339)
	to := day.AddDate(0, 0, 1).UTC().Format(time.RFC3339)

	rows, err := s.DB.Query(`
        SELECT id FROM sessions
        WHERE start_time >= ? AND start_time < ?
        ORDER BY start_time DESC`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var sessions []*models.Session
	for _, id := range ids {
		sess, err := s.GetSessionByID(id)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, sess)
	}
	return sessions, nil
}

// ListRecentSessions returns up to limit sessions, newest first, without
// their exercise graphs.
func (s *Storage) ListRecentSessions(limit int) ([]*models.Session, error) {
	rows, err := s.DB.Query(`
        SELECT id, template_id, status, start_time, end_time
        FROM sessions
        ORDER BY start_time DESC
        LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*models.Session
	for rows.Next() {
		var sess models.Session
		var templateID, endTime sql.NullString
		var rawStatus, startTime string
		if err := rows.Scan(&sess.ID, &templateID, &rawStatus, &startTime, &endTime); err != nil {
			return nil, err
		}
		sess.TemplateID = templateID.String
		if status, ok := models.ParseSessionStatus(rawStatus); ok {
			sess.Status = status
		}
		sess.StartTime, _ = time.Parse(time.RFC3339, startTime)
		if endTime.Valid && endTime.String != "" {
			sess.EndTime, _ = time.Parse(time.RFC3339, endTime.String)
		}
		sessions = append(sessions, &sess)
	}
	return sessions, rows.Err()
}

// CurrentSessionID returns the persisted active-session marker, or
// ErrNotFound when no session is marked active.
func (s *Storage) CurrentSessionID() (string, error) {
	var id string
	err := s.DB.QueryRow(`SELECT session_id FROM current_session`).Scan(&id)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return id, nil
}
