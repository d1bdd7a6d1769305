//go:build windows

package launcher

import "nyxshell/internal/domain"

func platformCatalog() []domain.DesktopApp {
	return []domain.DesktopApp{
		{Name: "File Manager", Path: "explorer.exe", Icon: "folder"},
		{Name: "Terminal", Path: "cmd.exe", Icon: "terminal"},
		{Name: "Web Browser", Path: "msedge.exe", Icon: "globe"},
	}
}
