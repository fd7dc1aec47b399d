package extract

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/srikanthsurna/swipe-project/constants"
	"github.com/srikanthsurna/swipe-project/internal/common"
	"github.com/srikanthsurna/swipe-project/internal/llm"
	"github.com/srikanthsurna/swipe-project/internal/store"
)

// FileResult is the per-file outcome of a successful pipeline run.
type FileResult struct {
	FileName   string                          `json:"fileName"`
	Format     constants.FileFormat            `json:"format"`
	Extraction *llm.ExtractionResult           `json:"extraction"`
	Report     Report                          `json:"report"`
	StoredIDs  map[constants.RecordKind]string `json:"storedIds"`
}

// FileFailure records why one file of a batch failed. Failures accumulate;
// they never overwrite each other and never abort the rest of the batch.
type FileFailure struct {
	FileName string `json:"fileName"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Err      error  `json:"-"`
}

// Service coordinates the extraction pipeline: classify, normalize, build
// prompt, invoke, parse, validate, store.
type Service struct {
	logger  *slog.Logger
	invoker llm.Invoker
	records *store.RecordStore
}

func NewService(logger *slog.Logger, invoker llm.Invoker, records *store.RecordStore) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger, invoker: invoker, records: records}
}

// ProcessFile runs the full pipeline for one file. The media type is checked
// before any byte-level work; an unsupported type fails without I/O. Each
// present sub-record becomes one independent store insert — there is no
// transactional grouping across the three.
func (s *Service) ProcessFile(ctx context.Context, file UploadedFile) (FileResult, error) {
	rid := uuid.New().String()
	start := time.Now()

	s.logger.Info("pipeline.file.start",
		"req_id", rid,
		"file", file.Name,
		"mime_type", file.MIMEType,
		"size", len(file.Content),
	)

	format := constants.DetectFormat(file.MIMEType)
	if format == constants.Unsupported {
		return FileResult{}, common.UnsupportedTypeError(file.MIMEType)
	}

	content, err := NormalizeContent(file, format)
	if err != nil {
		return FileResult{}, err
	}

	prompt := llm.BuildPrompt(format)

	raw, err := s.invoker.Invoke(ctx, content, prompt)
	if err != nil {
		return FileResult{}, common.InvocationError(err)
	}

	result, err := llm.ParseExtraction(raw)
	if err != nil {
		return FileResult{}, err
	}

	report := Validate(result)

	storedIDs := make(map[constants.RecordKind]string, 3)
	if result.Invoice != nil {
		rec := s.records.InsertInvoice(*result.Invoice)
		storedIDs[constants.KindInvoice] = rec.ID
	}
	if result.Product != nil {
		rec := s.records.InsertProduct(*result.Product)
		storedIDs[constants.KindProduct] = rec.ID
	}
	if result.Customer != nil {
		rec := s.records.InsertCustomer(*result.Customer)
		storedIDs[constants.KindCustomer] = rec.ID
	}

	s.logger.Info("pipeline.file.ok",
		"req_id", rid,
		"file", file.Name,
		"format", string(format),
		"valid", report.IsValid,
		"completeness", report.Completeness,
		"stored", len(storedIDs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	return FileResult{
		FileName:   file.Name,
		Format:     format,
		Extraction: result,
		Report:     report,
		StoredIDs:  storedIDs,
	}, nil
}

// ProcessBatch runs the pipeline over files strictly sequentially: each
// file's pipeline completes or fails before the next begins. It folds the
// batch into (results, failures); a per-file error is recorded and the batch
// moves on.
func (s *Service) ProcessBatch(ctx context.Context, files []UploadedFile) ([]FileResult, []FileFailure) {
	results := make([]FileResult, 0, len(files))
	var failures []FileFailure

	for _, file := range files {
		res, err := s.ProcessFile(ctx, file)
		if err != nil {
			s.logger.Error("pipeline.file.failed",
				"file", file.Name,
				"code", common.ErrorCode(err),
				"error", err,
			)
			failures = append(failures, FileFailure{
				FileName: file.Name,
				Code:     common.ErrorCode(err),
				Message:  err.Error(),
				Err:      err,
			})
			continue
		}
		results = append(results, res)
	}
	return results, failures
}
