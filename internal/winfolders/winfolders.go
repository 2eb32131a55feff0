//go:build windows

// Package winfolders binds the Known Folder API to the strategy
// oracle interface.
package winfolders

import (
	"golang.org/x/sys/windows"

	"github.com/thoreinstein/sysdirs/internal/strategy"
)

// API resolves known folders through SHGetKnownFolderPath, honoring
// user folder redirection and roaming policy.
type API struct{}

var folderIDs = map[strategy.FolderID]*windows.KNOWNFOLDERID{
	strategy.FolderProfile:        windows.FOLDERID_Profile,
	strategy.FolderLocalAppData:   windows.FOLDERID_LocalAppData,
	strategy.FolderRoamingAppData: windows.FOLDERID_RoamingAppData,
	strategy.FolderMusic:          windows.FOLDERID_Music,
	strategy.FolderDesktop:        windows.FOLDERID_Desktop,
	strategy.FolderDocuments:      windows.FOLDERID_Documents,
	strategy.FolderDownloads:      windows.FOLDERID_Downloads,
	strategy.FolderPictures:       windows.FOLDERID_Pictures,
	strategy.FolderPublic:         windows.FOLDERID_Public,
	strategy.FolderTemplates:      windows.FOLDERID_Templates,
	strategy.FolderVideos:         windows.FOLDERID_Videos,
}

// Path implements strategy.KnownFolders. A folder the OS cannot
// resolve (unregistered, not provisioned for the user) is absence.
func (API) Path(id strategy.FolderID) (string, bool) {
	guid, ok := folderIDs[id]
	if !ok {
		return "", false
	}
	p, err := windows.KnownFolderPath(guid, 0)
	if err != nil || p == "" {
		return "", false
	}
	return p, true
}
