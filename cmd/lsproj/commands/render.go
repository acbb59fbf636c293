package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"go.trai.ch/lsproj/internal/app"
	"go.trai.ch/lsproj/internal/core/domain"
)

// renderCrates prints one row per crate. Roots are shown relative to the manifest directory.
func renderCrates(w io.Writer, pc app.ProjectCrates) error {
	if len(pc.Crates) == 0 {
		_, err := fmt.Fprintf(w, "%s: no crates\n", pc.Manifest)
		return err
	}

	if _, err := fmt.Fprintf(w, "%s: %d crates\n", pc.Manifest, len(pc.Crates)); err != nil {
		return err
	}
	base := filepath.Dir(pc.Manifest)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "NAME\tROOT\tEDITION\tVERSION\tFEATURES")
	for _, crate := range pc.Crates {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			crate.Name,
			relative(base, crate.Root),
			crate.Settings.Edition.OrDefault(),
			orDash(crate.Settings.Version),
			features(crate.Settings.ExperimentalFeatures),
		)
	}
	return tw.Flush()
}

type cratesDocument struct {
	Manifest string         `json:"manifest"`
	Crates   []domain.Crate `json:"crates"`
}

func renderCratesJSON(w io.Writer, pc app.ProjectCrates) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(cratesDocument{Manifest: pc.Manifest, Crates: pc.Crates})
}

func renderDigests(w io.Writer, digests []app.FileDigest) error {
	for _, fd := range digests {
		if _, err := fmt.Fprintf(w, "%-16s  %s\n", fd.Digest, fd.Path); err != nil {
			return err
		}
	}
	return nil
}

// renderChanges prints changed files relative to root followed by a summary line.
func renderChanges(w io.Writer, root string, changes []domain.FileChange, all bool) error {
	counts := make(map[domain.ChangeKind]int)
	for _, change := range changes {
		counts[change.Kind]++
		if change.Kind == domain.ChangeUnchanged && !all {
			continue
		}
		if _, err := fmt.Fprintf(w, "%-9s  %s\n", change.Kind, relative(root, change.Path)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d tracked files: %d new, %d changed, %d unchanged, %d removed\n",
		len(changes)-counts[domain.ChangeRemoved],
		counts[domain.ChangeNew],
		counts[domain.ChangeChanged],
		counts[domain.ChangeUnchanged],
		counts[domain.ChangeRemoved],
	)
	return err
}

func relative(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func features(f domain.ExperimentalFeatures) string {
	var names []string
	if f.NegativeImpls {
		names = append(names, "negative_impls")
	}
	if f.Coupons {
		names = append(names, "coupons")
	}
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ",")
}
