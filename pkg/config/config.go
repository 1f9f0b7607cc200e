package config

// Open creates a manager over the file at path (empty means the default
// location), registers the tabselect sections and loads them.
func Open(path string) (*Manager, error) {
	store, err := NewFileStore(path)
	if err != nil {
		return nil, err
	}

	manager := NewManager(store)
	if err := manager.RegisterSection(NewCommandsSection()); err != nil {
		return nil, err
	}
	if err := manager.RegisterSection(NewGeneralSection()); err != nil {
		return nil, err
	}

	if err := manager.LoadAll(); err != nil {
		return nil, err
	}
	return manager, nil
}

// Commands returns the command preferences section, or nil if m has none.
func Commands(m *Manager) *CommandsSection {
	section, ok := m.GetSection(SectionIDCommands)
	if !ok {
		return nil
	}
	commands, _ := section.(*CommandsSection)
	return commands
}

// General returns the general settings section, or nil if m has none.
func General(m *Manager) *GeneralSection {
	section, ok := m.GetSection(SectionIDGeneral)
	if !ok {
		return nil
	}
	general, _ := section.(*GeneralSection)
	return general
}
