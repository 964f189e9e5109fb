package lesson

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/GCA-LessonService/internal/domain"
	"github.com/m04kA/GCA-LessonService/pkg/dbmetrics"
	"github.com/m04kA/GCA-LessonService/pkg/psqlbuilder"
)

// lessonColumns полный набор колонок таблицы lessons
var lessonColumns = []string{
	"id",
	"coach_id",
	"student_id",
	"start_time",
	"end_time",
	"status",
	"created_at",
	"updated_at",
}

// activeStatuses значения domain.ActiveStatuses для IN-фильтра активных уроков
var activeStatuses = func() []string {
	values := make([]string, 0, len(domain.ActiveStatuses))
	for _, s := range domain.ActiveStatuses {
		values = append(values, string(s))
	}
	return values
}()

// Repository репозиторий для работы с уроками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория уроков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый урок
// Если в контексте передана активная транзакция (через context.Value),
// использует её - создание урока с проверкой конфликтов выполняется
// в сериализуемой транзакции use case
func (r *Repository) Create(ctx context.Context, lesson *domain.Lesson) (*domain.Lesson, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("lessons").
		Columns(
			"coach_id",
			"student_id",
			"start_time",
			"end_time",
			"status",
		).
		Values(
			lesson.CoachID,
			lesson.StudentID,
			lesson.StartTime,
			lesson.EndTime,
			lesson.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&lesson.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	lesson.CreatedAt = createdAt.Time
	lesson.UpdatedAt = updatedAt.Time

	return lesson, nil
}

// GetByID получает урок по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Lesson, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(lessonColumns...).
		From("lessons").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	lesson, err := scanLesson(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrLessonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan lesson: %v", ErrScanRow, err)
	}

	return lesson, nil
}

// GetActiveByFilter получает активные (не отменённые) уроки участника,
// пересекающиеся с периодом [From, To)
//
// Выборка по пересечению интервалов, а не по вхождению start_time:
// урок, начавшийся до From, но заканчивающийся внутри периода, тоже
// участвует в проверке конфликтов.
//
// Если вызов выполняется внутри транзакции, строки блокируются FOR UPDATE -
// это сериализует конкурирующие бронирования одного участника.
func (r *Repository) GetActiveByFilter(ctx context.Context, filter domain.ActiveLessonsFilter) ([]*domain.Lesson, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if (filter.CoachID == nil) == (filter.StudentID == nil) {
		return nil, fmt.Errorf("%w: exactly one of CoachID/StudentID must be set", ErrInvalidFilter)
	}

	selectBuilder := psqlbuilder.Select(lessonColumns...).
		From("lessons").
		Where(squirrel.Eq{"status": activeStatuses}).
		Where(squirrel.Lt{"start_time": filter.To}).
		Where(squirrel.Gt{"end_time": filter.From}).
		OrderBy("start_time ASC")

	if filter.CoachID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"coach_id": *filter.CoachID})
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"student_id": *filter.StudentID})
	}

	// Блокировка строк для read-validate-write внутри транзакции
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanLessons(rows)
}

// GetByUserID получает уроки пользователя, где он тренер или ученик
// Опционально фильтрует по статусу и календарной дате (UTC)
func (r *Repository) GetByUserID(ctx context.Context, filter domain.UserLessonsFilter) ([]*domain.Lesson, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(lessonColumns...).
		From("lessons").
		Where(squirrel.Or{
			squirrel.Eq{"coach_id": filter.UserID},
			squirrel.Eq{"student_id": filter.UserID},
		}).
		OrderBy("start_time ASC")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": string(*filter.Status)})
	}

	if filter.Date != nil {
		dayStart := time.Date(filter.Date.Year(), filter.Date.Month(), filter.Date.Day(), 0, 0, 0, 0, time.UTC)
		dayEnd := dayStart.AddDate(0, 0, 1)
		selectBuilder = selectBuilder.
			Where(squirrel.GtOrEq{"start_time": dayStart}).
			Where(squirrel.Lt{"start_time": dayEnd})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanLessons(rows)
}

// UpdateTime обновляет время урока
func (r *Repository) UpdateTime(ctx context.Context, id int64, start, end time.Time) (*domain.Lesson, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("lessons").
		Set("start_time", start).
		Set("end_time", end).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(lessonColumns)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateTime - build update query: %v", ErrBuildQuery, err)
	}

	lesson, err := scanLesson(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrLessonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateTime - scan lesson: %v", ErrScanRow, err)
	}

	return lesson, nil
}

// UpdateStatus обновляет статус урока
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.LessonStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("lessons").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrLessonNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanLesson сканирует одну строку в урок
func scanLesson(row rowScanner) (*domain.Lesson, error) {
	var lesson domain.Lesson
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&lesson.ID,
		&lesson.CoachID,
		&lesson.StudentID,
		&lesson.StartTime,
		&lesson.EndTime,
		&lesson.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	// Метки времени нормализуются к UTC на границе хранилища
	lesson.StartTime = lesson.StartTime.UTC()
	lesson.EndTime = lesson.EndTime.UTC()
	lesson.CreatedAt = createdAt.Time
	lesson.UpdatedAt = updatedAt.Time

	return &lesson, nil
}

// scanLessons сканирует результаты запроса в слайс уроков
func scanLessons(rows *sql.Rows) ([]*domain.Lesson, error) {
	lessons := make([]*domain.Lesson, 0)

	for rows.Next() {
		lesson, err := scanLesson(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanLessons - scan row: %v", ErrScanRow, err)
		}
		lessons = append(lessons, lesson)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanLessons - rows error: %v", ErrScanRow, err)
	}

	return lessons, nil
}

func joinColumns(columns []string) string {
	out := columns[0]
	for _, c := range columns[1:] {
		out += ", " + c
	}
	return out
}
