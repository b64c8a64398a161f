package services

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/geoattend/internal/logging"
	sc "github.com/dmitrijs2005/geoattend/internal/server/config"
	"github.com/dmitrijs2005/geoattend/internal/server/models"
	"github.com/dmitrijs2005/geoattend/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

const reportURLValidity = 15 * time.Minute

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in, optFns...)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// DayReport is the JSON document uploaded by ExportDay.
type DayReport struct {
	Day         models.Day  `json:"day"`
	GeneratedAt time.Time   `json:"generated_at"`
	Sessions    []ReportRow `json:"sessions"`
}

type ReportRow struct {
	SessionID          string             `json:"session_id"`
	EmployeeID         string             `json:"employee_id"`
	EmployeeName       string             `json:"employee_name,omitempty"`
	SessionType        models.SessionType `json:"session_type"`
	ClockInTime        *time.Time         `json:"clock_in_time,omitempty"`
	ClockInLocationID  *int64             `json:"clock_in_location_id,omitempty"`
	ClockOutTime       *time.Time         `json:"clock_out_time,omitempty"`
	ClockOutLocationID *int64             `json:"clock_out_location_id,omitempty"`
	BiometricChecked   bool               `json:"biometric_checked"`
	BiometricDistance  *float64           `json:"biometric_distance,omitempty"`
	Complete           bool               `json:"complete"`
}

// ExportResult points at an uploaded report.
type ExportResult struct {
	Key      string
	URL      string
	Sessions int
}

// ReportService exports daily attendance to S3-compatible object storage.
type ReportService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
	logger      logging.Logger
	now         func() time.Time
}

func NewReportService(db *sql.DB, m repomanager.RepositoryManager, config *sc.Config, logger logging.Logger) *ReportService {
	return &ReportService{
		db:          db,
		repomanager: m,
		config:      config,
		logger:      logger.With("module", "reports"),
		now:         time.Now,
	}
}

// ReportKey returns a fresh object key for the given day.
func ReportKey(day models.Day) string {
	t := day.Time()
	return fmt.Sprintf("reports/%04d/%02d/%02d/%s.json", t.Year(), t.Month(), t.Day(), uuid.New())
}

// BuildDayReport assembles the report document without uploading it.
func (s *ReportService) BuildDayReport(ctx context.Context, day models.Day) (*DayReport, error) {
	recs, err := s.repomanager.Sessions(s.db).ListByDay(ctx, day)
	if err != nil {
		return nil, readError("list sessions", err)
	}

	employees, err := s.repomanager.Employees(s.db).List(ctx)
	if err != nil {
		return nil, readError("list employees", err)
	}
	names := make(map[string]string, len(employees))
	for _, e := range employees {
		names[e.EmployeeID] = e.Name
	}

	report := &DayReport{Day: day, GeneratedAt: s.now().UTC(), Sessions: make([]ReportRow, 0, len(recs))}
	for _, r := range recs {
		report.Sessions = append(report.Sessions, ReportRow{
			SessionID:          r.ID,
			EmployeeID:         r.EmployeeID,
			EmployeeName:       names[r.EmployeeID],
			SessionType:        r.SessionType,
			ClockInTime:        r.ClockInTime,
			ClockInLocationID:  r.ClockInLocationID,
			ClockOutTime:       r.ClockOutTime,
			ClockOutLocationID: r.ClockOutLocationID,
			BiometricChecked:   r.BiometricChecked,
			BiometricDistance:  r.BiometricDistance,
			Complete:           r.ClockedOut(),
		})
	}
	return report, nil
}

// ExportDay uploads the day's report and returns a time-limited download URL.
func (s *ReportService) ExportDay(ctx context.Context, day models.Day) (*ExportResult, error) {
	day, err := models.ParseDay(day.String())
	if err != nil {
		return nil, err
	}

	report, err := s.BuildDayReport(ctx, day)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}

	client, err := s.getS3Client(ctx)
	if err != nil {
		return nil, fmt.Errorf("s3 client: %w", err)
	}

	bucket := s.config.S3Bucket
	key := ReportKey(day)

	_, err = putObject(client, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return nil, fmt.Errorf("upload report: %w", err)
	}

	req, err := presignGetObject(newS3PresignClient(client), ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(reportURLValidity))
	if err != nil {
		return nil, fmt.Errorf("presign report: %w", err)
	}

	s.logger.Info(ctx, "report exported", "day", day, "key", key, "sessions", len(report.Sessions))
	return &ExportResult{Key: key, URL: req.URL, Sessions: len(report.Sessions)}, nil
}

func (s *ReportService) getS3Client(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	}), nil
}
