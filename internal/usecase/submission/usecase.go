package submission

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"studentloan-backend/internal/domain/document"
	"studentloan-backend/internal/domain/period"
	domain "studentloan-backend/internal/domain/submission"
	"studentloan-backend/internal/domain/uow"
	"studentloan-backend/internal/logging"
	"studentloan-backend/pkg/id"
)

const urlTTL = 15 * time.Minute

var (
	ErrNoFile       = errors.New("document has no uploaded file")
	ErrBlobDisabled = errors.New("file storage is not configured")
)

// BlobStore holds uploaded document files.
type BlobStore interface {
	Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	PresignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}

type Usecase struct {
	uow      uow.UnitOfWork
	repo     domain.Repository
	blobs    BlobStore
	catalog  *document.Catalog
	settings period.Settings
	now      func() time.Time
}

// NewUsecase: blobs may be nil, which disables Attach and DocumentURL.
func NewUsecase(tx uow.UnitOfWork, repo domain.Repository, blobs BlobStore, cat *document.Catalog, s period.Settings) *Usecase {
	if cat == nil {
		cat = document.DefaultCatalog()
	}
	return &Usecase{uow: tx, repo: repo, blobs: blobs, catalog: cat, settings: s, now: func() time.Time { return time.Now().UTC() }}
}

// Submit opens (or reopens) the listed kinds for review, creating the
// submission on first use.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*SubmissionDTO, error) {
	if !u.settings.SubmissionsEnabled {
		return nil, domain.ErrSubmissionsClosed
	}
	if err := in.Key.Validate(); err != nil {
		return nil, err
	}
	if len(in.Kinds) == 0 {
		return nil, domain.ErrNoDocuments
	}
	for _, k := range in.Kinds {
		if !document.IsKnown(k) {
			return nil, fmt.Errorf("%w: %s", document.ErrUnknownKind, k)
		}
	}

	var out *domain.Submission
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		s, err := r.Submissions.GetForUpdate(ctx, in.Key)
		creating := errors.Is(err, domain.ErrNotFound)
		if creating {
			s = domain.New(in.Key)
		} else if err != nil {
			return err
		}
		if in.StudentID != "" {
			s.StudentID = in.StudentID
		}
		if in.CitizenID != "" {
			s.CitizenID = in.CitizenID
		}
		for _, k := range in.Kinds {
			s.MarkSubmitted(k, "")
		}
		if creating {
			err = r.Submissions.Create(ctx, s)
		} else {
			err = r.Submissions.Save(ctx, s)
		}
		if err != nil {
			return err
		}
		out = s
		return nil
	})
	if err != nil {
		logging.Error(ctx, "submit documents failed", "table", "document_submissions", "key", in.Key.String(), "err", err)
		return nil, err
	}
	return u.toDTO(out), nil
}

// Attach stores the file and points the document at it, resetting the
// document to pending.
func (u *Usecase) Attach(ctx context.Context, in AttachInput) (*SubmissionDTO, error) {
	if u.blobs == nil {
		return nil, ErrBlobDisabled
	}
	if !u.settings.SubmissionsEnabled {
		return nil, domain.ErrSubmissionsClosed
	}
	if err := in.Key.Validate(); err != nil {
		return nil, err
	}
	if !document.IsKnown(in.Kind) {
		return nil, fmt.Errorf("%w: %s", document.ErrUnknownKind, in.Kind)
	}
	// fail before uploading when there is nothing to attach to
	if _, err := u.repo.Get(ctx, in.Key); err != nil {
		return nil, err
	}

	objectKey := ObjectKey(in.Key, in.Kind, in.Filename)
	if err := u.blobs.Upload(ctx, objectKey, in.Body, in.Size, in.ContentType); err != nil {
		logging.Error(ctx, "upload document failed", "object", objectKey, "err", err)
		return nil, err
	}

	var out *domain.Submission
	err := u.uow.WithinSubmissionTx(ctx, in.Key, func(r uow.Repos, s *domain.Submission) error {
		s.MarkSubmitted(in.Kind, objectKey)
		if err := r.Submissions.Save(ctx, s); err != nil {
			return err
		}
		out = s
		return nil
	})
	if err != nil {
		logging.Error(ctx, "attach document failed", "table", "document_submissions", "key", in.Key.String(), "err", err)
		return nil, err
	}
	return u.toDTO(out), nil
}

// ObjectKey is <year>/<term>/<user>/<kind>/<id><ext>.
func ObjectKey(key period.StudentKey, kind, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return path.Join(key.AcademicYear, key.Term, key.UserID, kind, id.NewID32()+ext)
}

func (u *Usecase) Get(ctx context.Context, key period.StudentKey) (*SubmissionDTO, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}
	s, err := u.repo.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	return u.toDTO(s), nil
}

func (u *Usecase) List(ctx context.Context, p period.Period) ([]SubmissionDTO, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	rows, err := u.repo.ListByPeriod(ctx, p)
	if err != nil {
		return nil, err
	}
	out := make([]SubmissionDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *u.toDTO(&rows[i]))
	}
	return out, nil
}

func (u *Usecase) DocumentURL(ctx context.Context, key period.StudentKey, kind string) (*URLDTO, error) {
	if u.blobs == nil {
		return nil, ErrBlobDisabled
	}
	if err := key.Validate(); err != nil {
		return nil, err
	}
	s, err := u.repo.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	st, ok := s.DocumentStatuses[kind]
	if !ok || st.FileKey == "" {
		return nil, ErrNoFile
	}
	url, err := u.blobs.PresignedURL(ctx, st.FileKey, urlTTL)
	if err != nil {
		return nil, err
	}
	return &URLDTO{URL: url, ExpiresAt: u.now().Add(urlTTL)}, nil
}

func (u *Usecase) toDTO(s *domain.Submission) *SubmissionDTO {
	kinds := s.DocumentStatuses.Kinds()
	docs := make([]DocumentDTO, 0, len(kinds))
	for _, k := range kinds {
		st := s.DocumentStatuses[k]
		docs = append(docs, DocumentDTO{
			Kind:       k,
			Label:      u.catalog.Label(k),
			Status:     st.Status,
			Comments:   st.Comments,
			ReviewedAt: st.ReviewedAt,
			ReviewedBy: st.ReviewedBy,
			HasFile:    st.FileKey != "",
		})
	}
	return &SubmissionDTO{
		UserID:       s.UserID,
		StudentID:    s.StudentID,
		CitizenID:    s.CitizenID,
		AcademicYear: s.AcademicYear,
		Term:         s.Term,
		Phase:        document.DetectPhase(kinds),
		AllApproved:  document.AllApproved(s.DocumentStatuses),
		Documents:    docs,
		UpdatedAt:    s.UpdatedAt,
	}
}
