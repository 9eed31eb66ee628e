package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/talentsift/cvanalyzer/pkg/fsx"
	"github.com/talentsift/cvanalyzer/pkg/fsx/fsxs3"
	"github.com/talentsift/cvanalyzer/pkg/logx"
)

const (
	defaultDatasetDir = "ResumeDataset"
	csvFileName       = "Resume.csv"
	pdfBaseFolder     = "data"
	storagePrefix     = "cv-pdfs"
	batchSize         = 100
)

func main() {
	logx.SetLevel(logx.LevelInfo)
	logx.Info("--- Database Seeding Initialized ---")

	if err := godotenv.Load(); err != nil {
		logx.Debugf("No .env file loaded: %v", err)
	}

	datasetDir := os.Getenv("DATASET_DIR")
	if datasetDir == "" {
		datasetDir = defaultDatasetDir
	}

	ctx := context.Background()

	db := connectDB()
	defer db.Close()

	fs := connectStorage(ctx)

	if err := ensureSchema(ctx, db); err != nil {
		logx.Fatalf("Failed to ensure schema: %v", err)
	}

	// Clean slate: storage first, then tables (resumes reference candidates)
	if err := clearBucket(ctx, fs); err != nil {
		logx.Fatalf("Failed to clear storage bucket: %v", err)
	}
	if err := clearTables(ctx, db); err != nil {
		logx.Fatalf("Failed to clear database tables: %v", err)
	}

	rows, err := readDataset(filepath.Join(datasetDir, csvFileName))
	if err != nil {
		logx.Fatalf("Failed to read dataset: %v", err)
	}
	logx.Infof("Read %d rows from %s", len(rows), csvFileName)

	seeded := 0
	batches := (len(rows) + batchSize - 1) / batchSize
	for b := 0; b < batches; b++ {
		start := b * batchSize
		end := start + batchSize
		if end > len(rows) {
			end = len(rows)
		}
		logx.Infof("--- Processing batch %d/%d ---", b+1, batches)

		for i := start; i < end; i++ {
			if err := seedRow(ctx, db, fs, datasetDir, i, rows[i]); err != nil {
				logx.Errorf("Row %d (%s) failed: %v", i+1, rows[i].ID, err)
				continue
			}
			seeded++
		}
	}

	logx.Info("--- Seeding Complete ---")
	logx.Infof("Total rows processed: %d", len(rows))
	logx.Infof("Successfully seeded records: %d", seeded)
}

func connectDB() *sqlx.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv("DB_HOST"), os.Getenv("DB_PORT"), os.Getenv("DB_USER"),
		os.Getenv("DB_PASS"), os.Getenv("DB_NAME"))

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func connectStorage(ctx context.Context) fsx.FileSystem {
	bucket := os.Getenv("AWS_BUCKET")
	if bucket == "" {
		logx.Fatal("AWS_BUCKET is not set")
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		logx.Fatalf("unable to load SDK config, %v", err)
	}

	return fsxs3.NewS3FileSystem(s3.NewFromConfig(cfg), bucket, storagePrefix)
}

func ensureSchema(ctx context.Context, db *sqlx.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS candidates (
			id UUID PRIMARY KEY,
			full_name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone_number TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE TABLE IF NOT EXISTS resumes (
			id UUID PRIMARY KEY,
			candidate_id UUID REFERENCES candidates(id) ON DELETE CASCADE,
			resume_text TEXT,
			category TEXT NOT NULL,
			pdf_url TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE INDEX IF NOT EXISTS idx_resumes_candidate_id ON resumes(candidate_id);
		CREATE INDEX IF NOT EXISTS idx_resumes_category ON resumes(category);
	`
	_, err := db.ExecContext(ctx, schema)
	return err
}

func clearBucket(ctx context.Context, fs fsx.FileSystem) error {
	logx.Info("--- Clearing Storage Bucket ---")

	paths, err := fs.List(ctx, "")
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		logx.Info("Storage bucket is already empty")
		return nil
	}

	logx.Infof("Deleting %d files from storage", len(paths))
	return fs.Delete(ctx, paths...)
}

func clearTables(ctx context.Context, db *sqlx.DB) error {
	logx.Info("--- Clearing Database Tables ---")

	if _, err := db.ExecContext(ctx, `DELETE FROM resumes`); err != nil {
		return fmt.Errorf("clear resumes: %w", err)
	}
	if _, err := db.ExecContext(ctx, `DELETE FROM candidates`); err != nil {
		return fmt.Errorf("clear candidates: %w", err)
	}
	return nil
}

// seedRow inserts one fabricated candidate plus their résumé, uploading
// the PDF when the dataset ships one
func seedRow(ctx context.Context, db *sqlx.DB, fs fsx.FileSystem, datasetDir string, rowIndex int, row datasetRow) error {
	identity := fabricateIdentity(rowIndex)

	candidateID := uuid.NewString()
	_, err := db.ExecContext(ctx, `
		INSERT INTO candidates (id, full_name, email, phone_number, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, candidateID, identity.FullName, identity.Email, identity.Phone, time.Now())
	if err != nil {
		return fmt.Errorf("insert candidate: %w", err)
	}

	localPDF := filepath.Join(datasetDir, pdfBaseFolder, row.Category, row.ID+".pdf")
	storagePath := row.Category + "/" + row.ID + ".pdf"

	var pdfURL *string
	pdfData, err := os.ReadFile(localPDF)
	if err != nil {
		logx.Warnf("PDF not found at %s, skipping upload", localPDF)
	} else {
		if err := fs.WriteFile(ctx, storagePath, pdfData, "application/pdf"); err != nil {
			logx.Errorf("Upload failed for %s: %v", storagePath, err)
		} else {
			url := fs.PublicURL(storagePath)
			pdfURL = &url
		}
	}

	text := row.Text
	if text == "" && pdfData != nil {
		// The CSV occasionally ships rows without extracted text
		extracted, err := extractPDFText(pdfData)
		if err != nil {
			logx.Warnf("Text extraction failed for %s: %v", localPDF, err)
		} else {
			text = extracted
		}
	}

	var textValue any
	if text != "" {
		textValue = text
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO resumes (id, candidate_id, resume_text, category, pdf_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, uuid.NewString(), candidateID, textValue, row.Category, pdfURL, time.Now())
	if err != nil {
		return fmt.Errorf("insert resume: %w", err)
	}

	logx.Infof("Seeded resume %s for candidate %q", row.ID, identity.FullName)
	return nil
}
