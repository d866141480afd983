// Package scanner locates the most recent access log in a directory.
//
// Log files follow a fixed naming convention with the date embedded in the
// filename:
//
//	nginx-access-ui.log-20170630.log
//	nginx-access-ui.log-20170630.gz
//
// Only the filename is consulted; file modification times are ignored so
// that re-copied or touched archives do not change which log is "latest".
package scanner

import (
	"os"
	"path/filepath"
	"regexp"
	"time"

	analyzererrors "nginx-log-analyzer/internal/errors"
	"nginx-log-analyzer/internal/models"
)

// filenamePattern matches valid log filenames and captures the raw date and
// the extension.
var filenamePattern = regexp.MustCompile(`^nginx-access-ui\.log-(\d{8})\.(gz|log)$`)

// dateLayout is the date format embedded in log filenames.
const dateLayout = "20060102"

// FindMostRecent scans dir and returns the log file with the latest date
// encoded in its filename. Filenames that do not match the naming convention
// or carry an impossible date (e.g. 20190631) are skipped.
//
// Returns (nil, nil) when the directory contains no valid log files. Returns
// an error when dir does not exist or is not a directory.
func FindMostRecent(dir string) (*models.LogFile, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, analyzererrors.NewLogDirInvalidError(dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, analyzererrors.NewLogDirInvalidError(dir)
	}

	var (
		mostRecent     *models.LogFile
		mostRecentName string
	)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		date, extension, ok := parseFilename(name)
		if !ok {
			continue
		}

		// Later date wins; for the same date the lexicographically larger
		// filename wins, so ".log" is preferred over ".gz".
		if mostRecent != nil {
			if date.Before(mostRecent.Date) {
				continue
			}
			if date.Equal(mostRecent.Date) && name < mostRecentName {
				continue
			}
		}

		path, err := filepath.Abs(filepath.Join(dir, name))
		if err != nil {
			path = filepath.Join(dir, name)
		}

		mostRecent = &models.LogFile{
			Path:      path,
			Date:      date,
			Extension: extension,
		}
		mostRecentName = name
	}

	return mostRecent, nil
}

// parseFilename extracts the date and extension from a log filename.
// Returns ok=false for names that do not follow the convention.
func parseFilename(name string) (time.Time, models.Extension, bool) {
	matches := filenamePattern.FindStringSubmatch(name)
	if matches == nil {
		return time.Time{}, "", false
	}

	date, err := time.Parse(dateLayout, matches[1])
	if err != nil {
		// Eight digits that do not form a real date.
		return time.Time{}, "", false
	}

	return date, models.Extension(matches[2]), true
}
