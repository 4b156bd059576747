package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Click-facil/fitclick/internal/domain"
	"github.com/Click-facil/fitclick/internal/metrics"
	"github.com/Click-facil/fitclick/internal/repository"
	"github.com/Click-facil/fitclick/internal/storage"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var ErrBackupsDisabled = errors.New("backups are disabled")

const (
	backupKeyPrefix       = "backups"
	backupTimestampLayout = "20060102T150405Z"
	backupContentType     = "application/json"
)

// BackupService exports both collections as a JSON snapshot to object storage.
type BackupService interface {
	Backup(ctx context.Context) (*domain.Backup, error)
	DeleteBackup(ctx context.Context, objectKey string) error
}

type backupService struct {
	exerciseRepo repository.ExerciseRepository
	workoutRepo  repository.WorkoutRepository
	fileStorage  storage.SnapshotStorage
	metrics      *metrics.Manager
	now          func() time.Time
}

// NewBackupService creates a BackupService. A nil fileStorage makes every
// call return ErrBackupsDisabled.
func NewBackupService(
	exerciseRepo repository.ExerciseRepository,
	workoutRepo repository.WorkoutRepository,
	fileStorage storage.SnapshotStorage,
	metricsManager *metrics.Manager,
	now func() time.Time,
) BackupService {
	if now == nil {
		now = time.Now
	}
	return &backupService{
		exerciseRepo: exerciseRepo,
		workoutRepo:  workoutRepo,
		fileStorage:  fileStorage,
		metrics:      metricsManager,
		now:          now,
	}
}

func (s *backupService) Backup(ctx context.Context) (backup *domain.Backup, err error) {
	if s.fileStorage == nil {
		return nil, ErrBackupsDisabled
	}
	defer func() {
		if s.metrics != nil {
			s.metrics.CounterBackups.WithLabelValues(metrics.Outcome(err)).Inc()
		}
	}()

	exercises, err := s.exerciseRepo.LoadExercises(ctx)
	if err != nil {
		return nil, fmt.Errorf("load exercises: %w", err)
	}
	workouts, err := s.workoutRepo.LoadWorkouts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load workouts: %w", err)
	}

	exportedAt := s.now().UTC()
	payload, err := json.Marshal(domain.Snapshot{
		ExportedAt: exportedAt,
		Exercises:  exercises,
		Workouts:   workouts,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}

	objectKey := BackupObjectKey(exportedAt, uuid.NewString())
	if err := s.fileStorage.PutObject(ctx, objectKey, backupContentType, payload); err != nil {
		return nil, fmt.Errorf("upload snapshot: %w", err)
	}

	backup = &domain.Backup{
		ObjectKey:  objectKey,
		Size:       int64(len(payload)),
		UploadedAt: exportedAt,
	}

	// The upload already succeeded, a missing link is not worth failing for.
	downloadURL, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, objectKey, storage.DefaultPresignedURLExpiry)
	if err != nil {
		log.Warnf("backup %s uploaded but presigning failed: %s", objectKey, err)
		return backup, nil
	}
	backup.DownloadURL = downloadURL

	log.Infof("backup uploaded: %s (%d bytes, %d workouts)", objectKey, backup.Size, len(workouts))
	return backup, nil
}

// DeleteBackup removes a snapshot previously written by Backup. Only keys
// under the backups prefix are accepted.
func (s *backupService) DeleteBackup(ctx context.Context, objectKey string) error {
	if s.fileStorage == nil {
		return ErrBackupsDisabled
	}
	if !isBackupObjectKey(objectKey) {
		return fmt.Errorf("%w: %q is not a backup object key", domain.ErrValidation, objectKey)
	}
	if err := s.fileStorage.DeleteObject(ctx, objectKey); err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	return nil
}

func isBackupObjectKey(key string) bool {
	if !strings.HasPrefix(key, backupKeyPrefix+"/") || !strings.HasSuffix(key, ".json") {
		return false
	}
	for _, part := range strings.Split(key, "/") {
		if part == "" || part == "." || part == ".." {
			return false
		}
	}
	return true
}

// BackupObjectKey builds backups/<yyyy>/<mm>/<timestamp>-<id>.json.
func BackupObjectKey(at time.Time, id string) string {
	at = at.UTC()
	return fmt.Sprintf("%s/%04d/%02d/%s-%s.json", backupKeyPrefix, at.Year(), int(at.Month()), at.Format(backupTimestampLayout), id)
}
