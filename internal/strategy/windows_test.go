package strategy

import (
	"testing"

	"github.com/thoreinstein/sysdirs/internal/env"
)

// fakeFolders is a KnownFolders backed by a map, standing in for the
// Known Folder API.
type fakeFolders map[FolderID]string

func (f fakeFolders) Path(id FolderID) (string, bool) {
	p, ok := f[id]
	return p, ok
}

func testFolders() fakeFolders {
	return fakeFolders{
		FolderProfile:        `C:\Users\Alice`,
		FolderLocalAppData:   `C:\Users\Alice\AppData\Local`,
		FolderRoamingAppData: `C:\Users\Alice\AppData\Roaming`,
		FolderMusic:          `C:\Users\Alice\Music`,
		FolderDesktop:        `C:\Users\Alice\Desktop`,
		FolderDocuments:      `C:\Users\Alice\Documents`,
		FolderDownloads:      `C:\Users\Alice\Downloads`,
		FolderPictures:       `C:\Users\Alice\Pictures`,
		FolderPublic:         `C:\Users\Public`,
		FolderTemplates:      `C:\Users\Alice\AppData\Roaming\Microsoft\Windows\Templates`,
		FolderVideos:         `C:\Users\Alice\Videos`,
	}
}

func TestWindowsKnownFolderMapping(t *testing.T) {
	w := Windows{Env: env.Map{}, Folders: testFolders()}

	tests := []struct {
		kind Kind
		want string
	}{
		{Home, `C:\Users\Alice`},
		{Cache, `C:\Users\Alice\AppData\Local`},
		{Config, `C:\Users\Alice\AppData\Roaming`},
		{ConfigLocal, `C:\Users\Alice\AppData\Local`},
		{Data, `C:\Users\Alice\AppData\Roaming`},
		{DataLocal, `C:\Users\Alice\AppData\Local`},
		{Preference, `C:\Users\Alice\AppData\Roaming`},
		{Audio, `C:\Users\Alice\Music`},
		{Desktop, `C:\Users\Alice\Desktop`},
		{Document, `C:\Users\Alice\Documents`},
		{Download, `C:\Users\Alice\Downloads`},
		{Picture, `C:\Users\Alice\Pictures`},
		{Public, `C:\Users\Public`},
		{Template, `C:\Users\Alice\AppData\Roaming\Microsoft\Windows\Templates`},
		{Video, `C:\Users\Alice\Videos`},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got, ok := w.Resolve(tt.kind)
			if !ok || got != tt.want {
				t.Errorf("Resolve(%v) = (%q, %v), want %q", tt.kind, got, ok, tt.want)
			}
		})
	}
}

func TestWindowsAbsentKinds(t *testing.T) {
	w := Windows{Env: env.Map{}, Folders: testFolders()}

	for _, k := range []Kind{Executable, Runtime, State, Font, Library} {
		if got, ok := w.Resolve(k); ok {
			t.Errorf("Resolve(%v) = %q, want absence", k, got)
		}
	}
}

func TestWindowsTempEnvPrecedence(t *testing.T) {
	w := Windows{
		Env:     env.Map{"TEMP": `C:\Temp`, "TMP": `C:\Tmp`},
		Folders: testFolders(),
	}
	if got, ok := w.Resolve(Temp); !ok || got != `C:\Temp` {
		t.Errorf("Resolve(Temp) = (%q, %v), want TEMP to win", got, ok)
	}

	w.Env = env.Map{"TMP": `C:\Tmp`}
	if got, ok := w.Resolve(Temp); !ok || got != `C:\Tmp` {
		t.Errorf("Resolve(Temp) = (%q, %v), want TMP fallback", got, ok)
	}

	w.Env = env.Map{}
	if got, ok := w.Resolve(Temp); ok {
		t.Errorf("Resolve(Temp) = %q with no TEMP/TMP, want absence", got)
	}
}

func TestWindowsFolderLookupFailure(t *testing.T) {
	// Known-folder lookups can fail for individual folders; the miss is
	// absence, not an error.
	w := Windows{Env: env.Map{}, Folders: fakeFolders{}}

	for _, k := range []Kind{Home, Cache, Config, Document} {
		if got, ok := w.Resolve(k); ok {
			t.Errorf("Resolve(%v) = %q with empty oracle, want absence", k, got)
		}
	}
}
