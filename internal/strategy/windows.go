package strategy

import "github.com/thoreinstein/sysdirs/internal/env"

// FolderID identifies a Windows known folder.
type FolderID int

// Known folders this package queries. The names follow the
// FOLDERID_* identifiers of the Known Folder API.
const (
	FolderProfile FolderID = iota
	FolderLocalAppData
	FolderRoamingAppData
	FolderMusic
	FolderDesktop
	FolderDocuments
	FolderDownloads
	FolderPictures
	FolderPublic
	FolderTemplates
	FolderVideos
)

// KnownFolders resolves known-folder identifiers to absolute paths,
// honoring user folder redirection and roaming policy. The production
// implementation wraps the Known Folder API; tests supply a fake.
type KnownFolders interface {
	Path(id FolderID) (string, bool)
}

// Windows resolves directories through the Known Folder system. Temp is
// the one exception: it follows %TEMP% then %TMP%, the convention the
// rest of the Windows toolchain observes. Kinds with no Windows analog
// (Executable, Runtime, State, Font, Library) are unconditionally
// absent.
type Windows struct {
	Env     env.Source
	Folders KnownFolders
}

// Resolve implements Strategy.
func (w Windows) Resolve(k Kind) (string, bool) {
	switch k {
	case Home:
		return w.Folders.Path(FolderProfile)
	case Cache, ConfigLocal, DataLocal:
		return w.Folders.Path(FolderLocalAppData)
	case Config, Data, Preference:
		return w.Folders.Path(FolderRoamingAppData)
	case Audio:
		return w.Folders.Path(FolderMusic)
	case Desktop:
		return w.Folders.Path(FolderDesktop)
	case Document:
		return w.Folders.Path(FolderDocuments)
	case Download:
		return w.Folders.Path(FolderDownloads)
	case Picture:
		return w.Folders.Path(FolderPictures)
	case Public:
		return w.Folders.Path(FolderPublic)
	case Template:
		return w.Folders.Path(FolderTemplates)
	case Video:
		return w.Folders.Path(FolderVideos)
	case Temp:
		if v, ok := w.Env.Lookup("TEMP"); ok {
			return v, true
		}
		return w.Env.Lookup("TMP")
	default:
		return "", false
	}
}
