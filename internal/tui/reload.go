package tui

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"mapedit/internal/config"
)

type configChangedMsg struct{ path string }

type configErrMsg struct{ err error }

// waitForConfig blocks on the watcher for the next change. It yields nil
// once the watcher is closed, which ends the chain.
func waitForConfig(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			return configChangedMsg{path: path}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return configErrMsg{err: err}
		}
	}
}

func (m *Model) reloadConfig() {
	cfg, err := config.Load(m.cfgPath)
	if err != nil {
		m.s.status = "config error: " + err.Error()
		log.Printf("reload %s: %v", m.cfgPath, err)
		return
	}
	m.s.applyConfig(cfg)
	m.s.status = "config reloaded"
	log.Printf("reloaded %s", m.cfgPath)
}
