package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"complaint-trends-service/internal/model"
)

// ComplaintRepository defines database operations for trend aggregation.
type ComplaintRepository interface {
	// FetchCategoryComplaints returns all non-deleted complaints in the
	// category, each joined to its category-specific detail row. A nil
	// since fetches regardless of submission date.
	FetchCategoryComplaints(ctx context.Context, category model.Category, since *time.Time) ([]model.ComplaintRecord, error)

	// CreateNotifications inserts notification rows efficiently using pgx.Batch.
	CreateNotifications(ctx context.Context, notifications []model.Notification) error
}

// Querier is the slice of pgxpool.Pool the repository needs; tests substitute
// a mock.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

var _ Querier = (*pgxpool.Pool)(nil)

type complaintRepository struct {
	querier Querier
}

// NewComplaintRepository creates a ComplaintRepository backed by PostgreSQL.
func NewComplaintRepository(querier Querier) ComplaintRepository {
	return &complaintRepository{querier: querier}
}

// One query per category: complaint joined to its one-to-one detail table.
// The detail table's complaintid is selected as a presence marker so a row
// without detail data maps to a nil detail pointer.
const (
	facilityComplaintsQuery = `
	SELECT c.complaintid, c.complaintstatus, c.submitteddate,
	       d.complaintid, d.typeoffacility, d.typeoffacilityissue, d.facilityfloor
	FROM complaint c
	JOIN category cat ON cat.categoryid = c.categoryid
	LEFT JOIN facilitycomplaint d ON d.complaintid = c.complaintid
	WHERE cat.categoryname = $1 AND c.complaintstatus <> 'Deleted'`

	academicComplaintsQuery = `
	SELECT c.complaintid, c.complaintstatus, c.submitteddate,
	       d.complaintid, d.specificationofissue, d.currentlevel
	FROM complaint c
	JOIN category cat ON cat.categoryid = c.categoryid
	LEFT JOIN academiccomplaint d ON d.complaintid = c.complaintid
	WHERE cat.categoryname = $1 AND c.complaintstatus <> 'Deleted'`

	technicalComplaintsQuery = `
	SELECT c.complaintid, c.complaintstatus, c.submitteddate,
	       d.complaintid, d.typeofissue
	FROM complaint c
	JOIN category cat ON cat.categoryid = c.categoryid
	LEFT JOIN technicalcomplaint d ON d.complaintid = c.complaintid
	WHERE cat.categoryname = $1 AND c.complaintstatus <> 'Deleted'`

	behaviorComplaintsQuery = `
	SELECT c.complaintid, c.complaintstatus, c.submitteddate,
	       d.complaintid, d.typeofbehavior
	FROM complaint c
	JOIN category cat ON cat.categoryid = c.categoryid
	LEFT JOIN studentbehaviorcomplaint d ON d.complaintid = c.complaintid
	WHERE cat.categoryname = $1 AND c.complaintstatus <> 'Deleted'`

	administrativeComplaintsQuery = `
	SELECT c.complaintid, c.complaintstatus, c.submitteddate,
	       d.complaintid, d.complaintdepartment
	FROM complaint c
	JOIN category cat ON cat.categoryid = c.categoryid
	LEFT JOIN administrativecomplaint d ON d.complaintid = c.complaintid
	WHERE cat.categoryname = $1 AND c.complaintstatus <> 'Deleted'`

	sinceClause = ` AND c.submitteddate >= $2`
)

type scanFunc func(rows pgx.Rows) (model.ComplaintRecord, error)

func categoryQuery(category model.Category) (string, scanFunc, error) {
	switch category {
	case model.CategoryFacility:
		return facilityComplaintsQuery, scanFacilityRow, nil
	case model.CategoryAcademic:
		return academicComplaintsQuery, scanAcademicRow, nil
	case model.CategoryTechnical:
		return technicalComplaintsQuery, scanTechnicalRow, nil
	case model.CategoryDisciplinary:
		return behaviorComplaintsQuery, scanBehaviorRow, nil
	case model.CategoryAdministrative:
		return administrativeComplaintsQuery, scanAdministrativeRow, nil
	default:
		return "", nil, fmt.Errorf("no detail table for category %q", category)
	}
}

func (r *complaintRepository) FetchCategoryComplaints(ctx context.Context, category model.Category, since *time.Time) ([]model.ComplaintRecord, error) {
	query, scan, err := categoryQuery(category)
	if err != nil {
		return nil, err
	}

	args := []any{string(category)}
	if since != nil {
		query += sinceClause
		args = append(args, *since)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetch %s complaints: %w", category, err)
	}
	defer rows.Close()

	var records []model.ComplaintRecord
	for rows.Next() {
		rec, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s complaint: %w", category, err)
		}
		rec.Category = category
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetch %s complaints: %w", category, err)
	}

	return records, nil
}

func scanFacilityRow(rows pgx.Rows) (model.ComplaintRecord, error) {
	var rec model.ComplaintRecord
	var detailID *int64
	var facilityType, issueType, floor *string
	if err := rows.Scan(&rec.ComplaintID, &rec.Status, &rec.SubmittedDate, &detailID, &facilityType, &issueType, &floor); err != nil {
		return rec, err
	}
	if detailID != nil {
		rec.Facility = &model.FacilityDetail{
			FacilityType: deref(facilityType),
			IssueType:    deref(issueType),
			Floor:        deref(floor),
		}
	}
	return rec, nil
}

func scanAcademicRow(rows pgx.Rows) (model.ComplaintRecord, error) {
	var rec model.ComplaintRecord
	var detailID *int64
	var issueSpec, level *string
	if err := rows.Scan(&rec.ComplaintID, &rec.Status, &rec.SubmittedDate, &detailID, &issueSpec, &level); err != nil {
		return rec, err
	}
	if detailID != nil {
		rec.Academic = &model.AcademicDetail{
			IssueSpecification: deref(issueSpec),
			Level:              deref(level),
		}
	}
	return rec, nil
}

func scanTechnicalRow(rows pgx.Rows) (model.ComplaintRecord, error) {
	var rec model.ComplaintRecord
	var detailID *int64
	var issueType *string
	if err := rows.Scan(&rec.ComplaintID, &rec.Status, &rec.SubmittedDate, &detailID, &issueType); err != nil {
		return rec, err
	}
	if detailID != nil {
		rec.Technical = &model.TechnicalDetail{IssueType: deref(issueType)}
	}
	return rec, nil
}

func scanBehaviorRow(rows pgx.Rows) (model.ComplaintRecord, error) {
	var rec model.ComplaintRecord
	var detailID *int64
	var behaviorType *string
	if err := rows.Scan(&rec.ComplaintID, &rec.Status, &rec.SubmittedDate, &detailID, &behaviorType); err != nil {
		return rec, err
	}
	if detailID != nil {
		rec.Behavior = &model.BehaviorDetail{BehaviorType: deref(behaviorType)}
	}
	return rec, nil
}

func scanAdministrativeRow(rows pgx.Rows) (model.ComplaintRecord, error) {
	var rec model.ComplaintRecord
	var detailID *int64
	var department *string
	if err := rows.Scan(&rec.ComplaintID, &rec.Status, &rec.SubmittedDate, &detailID, &department); err != nil {
		return rec, err
	}
	if detailID != nil {
		rec.Administrative = &model.AdministrativeDetail{Department: deref(department)}
	}
	return rec, nil
}

const insertNotificationQuery = `
	INSERT INTO notifications (userid, complaint_id, type, message, is_read)
	VALUES ($1, $2, $3, $4, $5)
`

func (r *complaintRepository) CreateNotifications(ctx context.Context, notifications []model.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, n := range notifications {
		batch.Queue(insertNotificationQuery,
			n.UserID,
			n.ComplaintID,
			n.Type,
			n.Message,
			n.IsRead,
		)
	}

	br := r.querier.SendBatch(ctx, batch)
	defer br.Close()

	for range notifications {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("batch execution error: %w", err)
		}
	}

	return nil
}

func deref(val *string) string {
	if val == nil {
		return ""
	}
	return *val
}
