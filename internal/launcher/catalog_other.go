//go:build !windows

package launcher

import "nyxshell/internal/domain"

func platformCatalog() []domain.DesktopApp {
	return []domain.DesktopApp{
		{Name: "File Manager", Path: "nautilus", Icon: "folder"},
		{Name: "Terminal", Path: "gnome-terminal", Icon: "terminal"},
		{Name: "Web Browser", Path: "firefox", Icon: "globe"},
	}
}
