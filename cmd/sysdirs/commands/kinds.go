package commands

import (
	"github.com/thoreinstein/sysdirs"
	"github.com/thoreinstein/sysdirs/internal/strategy"
)

// resolvers maps each directory kind to its public resolution function.
var resolvers = map[strategy.Kind]func() sysdirs.Path{
	strategy.Home:        sysdirs.HomeDir,
	strategy.Cache:       sysdirs.CacheDir,
	strategy.Config:      sysdirs.ConfigDir,
	strategy.ConfigLocal: sysdirs.ConfigLocalDir,
	strategy.Data:        sysdirs.DataDir,
	strategy.DataLocal:   sysdirs.DataLocalDir,
	strategy.Executable:  sysdirs.ExecutableDir,
	strategy.Preference:  sysdirs.PreferenceDir,
	strategy.Runtime:     sysdirs.RuntimeDir,
	strategy.State:       sysdirs.StateDir,
	strategy.Audio:       sysdirs.AudioDir,
	strategy.Desktop:     sysdirs.DesktopDir,
	strategy.Document:    sysdirs.DocumentDir,
	strategy.Download:    sysdirs.DownloadDir,
	strategy.Font:        sysdirs.FontDir,
	strategy.Picture:     sysdirs.PictureDir,
	strategy.Public:      sysdirs.PublicDir,
	strategy.Template:    sysdirs.TemplateDir,
	strategy.Video:       sysdirs.VideoDir,
	strategy.Temp:        sysdirs.TempDir,
	strategy.Library:     sysdirs.LibraryDir,
}

// resolveKind looks a kind up by its CLI name and resolves it.
// The second result reports whether the name is a known kind.
func resolveKind(name string) (sysdirs.Path, bool) {
	k, ok := strategy.Parse(name)
	if !ok {
		return sysdirs.Path{}, false
	}
	return resolvers[k](), true
}

// kindNames returns the CLI names of every directory kind in
// declaration order.
func kindNames() []string {
	kinds := strategy.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}
