package applicationinfra

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/hiredeck/talentgate/pkg/kernel"
	"github.com/hiredeck/talentgate/recruitment/application"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresApplicationRepository implements application.Repository using PostgreSQL
type PostgresApplicationRepository struct {
	db *sqlx.DB
}

// NewPostgresApplicationRepository creates a new PostgreSQL application repository
func NewPostgresApplicationRepository(db *sqlx.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{
		db: db,
	}
}

// ============================================================================
// Database Model
// ============================================================================

type applicationModel struct {
	ID                   string    `db:"id"`
	JobID                string    `db:"job_id"`
	FullName             string    `db:"full_name"`
	Email                string    `db:"email"`
	Phone                string    `db:"phone"`
	Location             string    `db:"location"`
	PortfolioURL         string    `db:"portfolio_url"`
	LinkedinProfile      string    `db:"linkedin_profile"`
	EducationStatus      string    `db:"education_status"`
	DegreeDiscipline     string    `db:"degree_discipline"`
	ResearchPapers       string    `db:"research_papers"`
	InternshipExperience string    `db:"internship_experience"`
	Duration             string    `db:"duration"`
	AiMlProjects         string    `db:"ai_ml_projects"`
	Motivation           string    `db:"motivation"`
	Status               string    `db:"status"`
	AppliedBy            string    `db:"applied_by"`
	CreatedAt            time.Time `db:"created_at"`
	UpdatedAt            time.Time `db:"updated_at"`
}

const selectColumns = `
		id, job_id, full_name, email, phone, location,
		portfolio_url, linkedin_profile, education_status, degree_discipline,
		research_papers, internship_experience, duration, ai_ml_projects,
		motivation, status, applied_by, created_at, updated_at`

// toEntity converts database model to domain entity
func (m *applicationModel) toEntity() *application.Application {
	return &application.Application{
		ID:                   kernel.ApplicationID(m.ID),
		JobID:                kernel.JobID(m.JobID),
		FullName:             m.FullName,
		Email:                kernel.Email(m.Email),
		Phone:                m.Phone,
		Location:             m.Location,
		PortfolioURL:         m.PortfolioURL,
		LinkedinProfile:      m.LinkedinProfile,
		EducationStatus:      m.EducationStatus,
		DegreeDiscipline:     m.DegreeDiscipline,
		ResearchPapers:       m.ResearchPapers,
		InternshipExperience: m.InternshipExperience,
		Duration:             m.Duration,
		AiMlProjects:         m.AiMlProjects,
		Motivation:           m.Motivation,
		Status:               application.ApplicationStatus(m.Status),
		AppliedBy:            kernel.UserID(m.AppliedBy),
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

// fromEntity converts domain entity to database model
func fromEntity(app *application.Application) *applicationModel {
	return &applicationModel{
		ID:                   string(app.ID),
		JobID:                string(app.JobID),
		FullName:             app.FullName,
		Email:                string(app.Email),
		Phone:                app.Phone,
		Location:             app.Location,
		PortfolioURL:         app.PortfolioURL,
		LinkedinProfile:      app.LinkedinProfile,
		EducationStatus:      app.EducationStatus,
		DegreeDiscipline:     app.DegreeDiscipline,
		ResearchPapers:       app.ResearchPapers,
		InternshipExperience: app.InternshipExperience,
		Duration:             app.Duration,
		AiMlProjects:         app.AiMlProjects,
		Motivation:           app.Motivation,
		Status:               string(app.Status),
		AppliedBy:            string(app.AppliedBy),
		CreatedAt:            app.CreatedAt,
		UpdatedAt:            app.UpdatedAt,
	}
}

// ============================================================================
// Query Building
// ============================================================================

// baseSearchColumns are the columns matched by free-text search.
var baseSearchColumns = []string{
	"full_name", "email", "location", "degree_discipline", "education_status",
}

// extendedSearchColumns additionally participate in the candidate listing.
var extendedSearchColumns = []string{
	"ai_ml_projects", "research_papers",
}

// sortColumns whitelists the sortable fields by their API names. Anything
// else falls back to created_at.
var sortColumns = map[string]string{
	"jobId":            "job_id",
	"fullName":         "full_name",
	"email":            "email",
	"phone":            "phone",
	"location":         "location",
	"educationStatus":  "education_status",
	"degreeDiscipline": "degree_discipline",
	"duration":         "duration",
	"status":           "status",
	"appliedBy":        "applied_by",
	"createdAt":        "created_at",
	"updatedAt":        "updated_at",
}

// buildWhere translates a filter into a WHERE clause and its arguments.
// Omitted parameters emit no clause at all.
func buildWhere(f application.ListFilter) (string, []any) {
	whereConditions := []string{}
	args := []any{}
	argCount := 1

	if f.Status != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("status = $%d", argCount))
		args = append(args, string(f.Status))
		argCount++
	}

	if !f.JobID.IsEmpty() {
		whereConditions = append(whereConditions, fmt.Sprintf("job_id = $%d", argCount))
		args = append(args, f.JobID.String())
		argCount++
	}

	if f.EducationStatus != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("education_status = $%d", argCount))
		args = append(args, f.EducationStatus)
		argCount++
	}

	if f.Search != "" {
		columns := baseSearchColumns
		if f.ExtendedSearch {
			columns = append(append([]string{}, baseSearchColumns...), extendedSearchColumns...)
		}
		clauses := make([]string, 0, len(columns))
		for _, col := range columns {
			clauses = append(clauses, fmt.Sprintf("%s ILIKE $%d", col, argCount))
		}
		whereConditions = append(whereConditions, "("+strings.Join(clauses, " OR ")+")")
		args = append(args, "%"+f.Search+"%")
		argCount++
	}

	if len(whereConditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(whereConditions, " AND "), args
}

// orderBy resolves the requested sort into a safe ORDER BY clause.
func orderBy(sortBy, sortOrder string) string {
	column, ok := sortColumns[sortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		direction = "ASC"
	}
	return fmt.Sprintf("ORDER BY %s %s", column, direction)
}

func page(pagination kernel.PaginationOptions, total int) kernel.Page {
	return kernel.Page{
		Number: pagination.Page,
		Size:   pagination.PageSize,
		Total:  total,
		Pages:  (total + pagination.PageSize - 1) / pagination.PageSize,
	}
}

// ============================================================================
// Repository Implementation
// ============================================================================

// Create persists a new application. The (job_id, applied_by) unique index
// turns a duplicate submission into ErrDuplicateApplication atomically.
func (r *PostgresApplicationRepository) Create(ctx context.Context, app *application.Application) error {
	model := fromEntity(app)

	query := `
		INSERT INTO applications (
			id, job_id, full_name, email, phone, location,
			portfolio_url, linkedin_profile, education_status, degree_discipline,
			research_papers, internship_experience, duration, ai_ml_projects,
			motivation, status, applied_by, created_at, updated_at
		) VALUES (
			:id, :job_id, :full_name, :email, :phone, :location,
			:portfolio_url, :linkedin_profile, :education_status, :degree_discipline,
			:research_papers, :internship_experience, :duration, :ai_ml_projects,
			:motivation, :status, :applied_by, :created_at, :updated_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" { // unique_violation
			return application.ErrDuplicateApplication().
				WithDetail("job_id", string(app.JobID)).
				WithDetail("applied_by", string(app.AppliedBy))
		}
		return fmt.Errorf("failed to create application: %w", err)
	}

	return nil
}

// GetByID retrieves an application by ID
func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id kernel.ApplicationID) (*application.Application, error) {
	query := fmt.Sprintf(`SELECT %s FROM applications WHERE id = $1`, selectColumns)

	var model applicationModel
	err := r.db.GetContext(ctx, &model, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, application.ErrApplicationNotFound()
		}
		return nil, fmt.Errorf("failed to get application by id: %w", err)
	}

	return model.toEntity(), nil
}

// UpdateStatus changes the review state and returns the updated record
func (r *PostgresApplicationRepository) UpdateStatus(ctx context.Context, id kernel.ApplicationID, status application.ApplicationStatus) (*application.Application, error) {
	query := fmt.Sprintf(`
		UPDATE applications
		SET status = $1, updated_at = $2
		WHERE id = $3
		RETURNING %s
	`, selectColumns)

	var model applicationModel
	err := r.db.GetContext(ctx, &model, query, string(status), time.Now(), string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, application.ErrApplicationNotFound()
		}
		return nil, fmt.Errorf("failed to update application status: %w", err)
	}

	return model.toEntity(), nil
}

// List retrieves applications matching the filter, paginated
func (r *PostgresApplicationRepository) List(ctx context.Context, filter application.ListFilter) (*kernel.Paginated[application.Application], error) {
	whereClause, args := buildWhere(filter)

	// Count total, independent of pagination
	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM applications %s", whereClause)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, fmt.Errorf("failed to count applications: %w", err)
	}

	offset := (filter.Pagination.Page - 1) * filter.Pagination.PageSize

	query := fmt.Sprintf(`
		SELECT %s
		FROM applications
		%s
		%s
		LIMIT $%d OFFSET $%d
	`, selectColumns, whereClause, orderBy(filter.SortBy, filter.SortOrder), len(args)+1, len(args)+2)

	args = append(args, filter.Pagination.PageSize, offset)

	var models []applicationModel
	if err := r.db.SelectContext(ctx, &models, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	entities := make([]application.Application, 0, len(models))
	for _, model := range models {
		entities = append(entities, *model.toEntity())
	}

	return &kernel.Paginated[application.Application]{
		Items: entities,
		Page:  page(filter.Pagination, total),
		Empty: len(entities) == 0,
	}, nil
}

// ListByApplicant retrieves one applicant's applications, newest first
func (r *PostgresApplicationRepository) ListByApplicant(ctx context.Context, applicant kernel.UserID, filter application.MyApplicationsFilter) (*kernel.Paginated[application.Application], error) {
	whereClause := "WHERE applied_by = $1"
	args := []any{applicant.String()}

	if filter.Status != "" {
		whereClause += " AND status = $2"
		args = append(args, string(filter.Status))
	}

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM applications %s", whereClause)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, fmt.Errorf("failed to count applicant applications: %w", err)
	}

	offset := (filter.Pagination.Page - 1) * filter.Pagination.PageSize

	query := fmt.Sprintf(`
		SELECT %s
		FROM applications
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, selectColumns, whereClause, len(args)+1, len(args)+2)

	args = append(args, filter.Pagination.PageSize, offset)

	var models []applicationModel
	if err := r.db.SelectContext(ctx, &models, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list applicant applications: %w", err)
	}

	entities := make([]application.Application, 0, len(models))
	for _, model := range models {
		entities = append(entities, *model.toEntity())
	}

	return &kernel.Paginated[application.Application]{
		Items: entities,
		Page:  page(filter.Pagination, total),
		Empty: len(entities) == 0,
	}, nil
}

// StatusBreakdown counts matching applications grouped by status. The result
// always carries all five statuses, zero-filled.
func (r *PostgresApplicationRepository) StatusBreakdown(ctx context.Context, filter application.ListFilter) (map[application.ApplicationStatus]int, error) {
	whereClause, args := buildWhere(filter)

	query := fmt.Sprintf(`
		SELECT status, COUNT(*) AS count
		FROM applications
		%s
		GROUP BY status
	`, whereClause)

	rows := []struct {
		Status string `db:"status"`
		Count  int    `db:"count"`
	}{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to aggregate status breakdown: %w", err)
	}

	breakdown := application.EmptyStatusBreakdown()
	for _, row := range rows {
		breakdown[application.ApplicationStatus(row.Status)] = row.Count
	}

	return breakdown, nil
}

// Count counts all applications
func (r *PostgresApplicationRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM applications`); err != nil {
		return 0, fmt.Errorf("failed to count applications: %w", err)
	}
	return count, nil
}

// CountCreatedSince counts applications created at or after the cutoff
func (r *PostgresApplicationRepository) CountCreatedSince(ctx context.Context, cutoff time.Time) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM applications WHERE created_at >= $1`
	if err := r.db.GetContext(ctx, &count, query, cutoff); err != nil {
		return 0, fmt.Errorf("failed to count recent applications: %w", err)
	}
	return count, nil
}
