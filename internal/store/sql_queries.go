package store

import (
	"strconv"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/civilci/intake-portal/models"
)

var (
	userColumns = []string{"id", "external_id", "email", "role", "created_at", "updated_at"}

	caseReviewColumns = []string{
		"id", "user_id", "name", "email", "phone", "service_type",
		"case_summary", "urgency", "status", "created_at", "updated_at",
	}

	caseNoteColumns = []string{"id", "case_id", "author_id", "content", "is_internal", "created_at"}

	evidenceColumns = []string{
		"id", "case_id", "uploaded_by", "file_name", "file_type",
		"file_size", "storage_path", "checksum", "created_at",
	}
)

// users

func (db *DB) buildUpsertUserQuery(user models.User) (string, []any, error) {
	return db.builder.
		Insert(models.User{}.TableName()).
		Columns(userColumns...).
		Values(user.ID, user.ExternalID, user.Email, string(user.Role), user.CreatedAt, user.UpdatedAt).
		Suffix(`ON CONFLICT (external_id) DO UPDATE SET
			email = EXCLUDED.email,
			updated_at = EXCLUDED.updated_at,
			role = CASE WHEN EXCLUDED.role = 'admin' THEN 'admin' ELSE users.role END
		RETURNING id, external_id, email, role, created_at, updated_at`).
		ToSql()
}

func (db *DB) buildFindUserByIDQuery(id string) (string, []any, error) {
	return db.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// case reviews

func (db *DB) buildInsertCaseReviewQuery(c models.CaseReview) (string, []any, error) {
	var serviceType *string
	if c.ServiceType != nil {
		s := string(*c.ServiceType)
		serviceType = &s
	}

	return db.builder.
		Insert(models.CaseReview{}.TableName()).
		Columns(caseReviewColumns...).
		Values(
			c.ID, c.UserID, c.Name, c.Email, c.Phone, serviceType,
			c.CaseSummary, string(c.Urgency), string(c.Status), c.CreatedAt, c.UpdatedAt,
		).
		ToSql()
}

func (db *DB) buildFindCaseReviewQuery(id string) (string, []any, error) {
	return db.builder.
		Select(caseReviewColumns...).
		From(models.CaseReview{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (db *DB) buildListCaseReviewsQuery(query CaseReviewQuery) (string, []any, error) {
	sb := db.builder.
		Select(caseReviewColumns...).
		From(models.CaseReview{}.TableName())

	if query.OwnerID != nil {
		sb = sb.Where(sq.Eq{"user_id": *query.OwnerID})
	}
	if query.Status != nil {
		sb = sb.Where(sq.Eq{"status": query.Status.Spellings()})
	}

	return sb.OrderBy("created_at DESC", "id DESC").ToSql()
}

func (db *DB) buildUpdateCaseStatusQuery(id string, status models.CaseStatus, updatedAt time.Time) (string, []any, error) {
	return db.builder.
		Update(models.CaseReview{}.TableName()).
		Set("status", string(status)).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// case notes

func (db *DB) buildInsertCaseNoteQuery(n models.CaseNote) (string, []any, error) {
	return db.builder.
		Insert(models.CaseNote{}.TableName()).
		Columns(caseNoteColumns...).
		Values(n.ID, n.CaseID, n.AuthorID, n.Content, n.IsInternal, n.CreatedAt).
		ToSql()
}

func (db *DB) buildListCaseNotesQuery(caseID string) (string, []any, error) {
	return db.builder.
		Select(caseNoteColumns...).
		From(models.CaseNote{}.TableName()).
		Where(sq.Eq{"case_id": caseID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

// evidence

func (db *DB) buildInsertEvidenceQuery(f models.EvidenceFile) (string, []any, error) {
	return db.builder.
		Insert(models.EvidenceFile{}.TableName()).
		Columns(evidenceColumns...).
		Values(
			f.ID, f.CaseID, f.UploadedBy, f.FileName, f.FileType,
			strconv.FormatInt(f.FileSize, 10), f.StoragePath, f.Checksum, f.CreatedAt,
		).
		ToSql()
}

func (db *DB) buildFindEvidenceQuery(id string) (string, []any, error) {
	return db.builder.
		Select(evidenceColumns...).
		From(models.EvidenceFile{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (db *DB) buildListEvidenceQuery(caseID string) (string, []any, error) {
	return db.builder.
		Select(evidenceColumns...).
		From(models.EvidenceFile{}.TableName()).
		Where(sq.Eq{"case_id": caseID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

func (db *DB) buildDeleteEvidenceQuery(id string) (string, []any, error) {
	return db.builder.
		Delete(models.EvidenceFile{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}
