// Package scanner drives a pattern search over every readable region of an
// attached process.
package scanner

import (
	"fmt"

	"memfinder/pattern"
	"memfinder/process"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
)

// Scanner owns one attached platform backend. It is not safe for concurrent
// use; independent scanners over different processes may run in parallel.
type Scanner struct {
	platform process.Platform
	log      *logger.Logger
}

// Attach attaches to pid with the backend compiled in for the current OS.
// The caller must Close the returned Scanner.
func Attach(pid process.ProcessID) (*Scanner, error) {
	return AttachWith(pid, attachPlatform)
}

// AttachWith attaches to pid using the given backend.
func AttachWith(pid process.ProcessID, attach process.AttachFunc) (*Scanner, error) {
	platform, err := attach(pid)
	if err != nil {
		return nil, err
	}
	return New(platform), nil
}

// New wraps an already attached backend. The Scanner takes ownership of it.
func New(platform process.Platform) *Scanner {
	return &Scanner{
		platform: platform,
		log:      logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, "scanner")),
	}
}

// Scan searches every readable region, in enumeration order, for pat and
// returns at most maxResults matches. Regions that cannot be read are skipped,
// so a scan never fails; it may only come back empty.
func (s *Scanner) Scan(pat pattern.Pattern, maxResults int) []process.ScanResult {
	var results []process.ScanResult
	if pat.IsEmpty() || maxResults <= 0 {
		return results
	}

	regions := s.platform.Regions()
	s.log.Infoln("Starting memory scan for pattern of length", pat.Len(), "over", len(regions), "regions")

	n := pat.Len()
	skipped := 0
	for _, region := range regions {
		if len(results) >= maxResults {
			break
		}

		buf, ok := s.platform.ReadRegion(region)
		if !ok {
			skipped++
			continue
		}

		for off := 0; off+n <= len(buf); off++ {
			if !pat.Matches(buf, off) {
				continue
			}

			matched := make([]byte, n)
			copy(matched, buf[off:off+n])
			results = append(results, process.ScanResult{
				Address:      region.Start + process.ProcessMemoryAddress(off),
				MatchedBytes: matched,
			})

			if len(results) >= maxResults {
				break
			}
		}
	}

	if skipped > 0 {
		s.log.Debugln("Skipped", skipped, "unreadable regions")
	}
	s.log.Infoln("Scan complete, found", len(results), "matches")

	return results
}

// Close releases the backend's OS handle.
func (s *Scanner) Close() error {
	if err := s.platform.Close(); err != nil {
		return fmt.Errorf("close platform: %w", err)
	}
	return nil
}
