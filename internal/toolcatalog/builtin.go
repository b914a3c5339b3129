package toolcatalog

// BuiltinSchemas returns the nine dummy-tool schemas used for deterministic
// local evaluation: sound effects, calendar, todo, weather, news, and a
// key-value database, each with additionalProperties forbidden.
func BuiltinSchemas() []ToolSchema {
	return []ToolSchema{
		playSoundEffectSchema(),
		createCalendarEventSchema(),
		readCalendarEventsSchema(),
		createTodoTaskSchema(),
		readTodoTasksSchema(),
		weatherSchema(),
		newsSchema(),
		readDatabaseRecordSchema(),
		writeDatabaseRecordSchema(),
	}
}

func playSoundEffectSchema() ToolSchema {
	return ToolSchema{
		Name:        "play_sound_effect",
		Description: "Return a sound event to express emotion at appropriate timing.",
		Properties: map[string]PropertySchema{
			"event_name": {Type: TypeString},
			"intensity":  {Type: TypeString, Enum: []string{"low", "medium", "high"}},
		},
		Required:                    []string{"event_name", "intensity"},
		AdditionalPropertiesAllowed: false,
	}
}

func createCalendarEventSchema() ToolSchema {
	return ToolSchema{
		Name:        "create_calendar_event",
		Description: "Create a calendar event in the dummy calendar store.",
		Properties: map[string]PropertySchema{
			"title":          {Type: TypeString},
			"start_datetime": {Type: TypeString},
			"end_datetime":   {Type: TypeString},
			"location":       {Type: TypeString},
		},
		Required:                    []string{"title", "start_datetime", "end_datetime"},
		AdditionalPropertiesAllowed: false,
	}
}

func readCalendarEventsSchema() ToolSchema {
	return ToolSchema{
		Name:        "read_calendar_events",
		Description: "Read calendar events by date range.",
		Properties: map[string]PropertySchema{
			"start_date": {Type: TypeString},
			"end_date":   {Type: TypeString},
		},
		Required:                    []string{"start_date", "end_date"},
		AdditionalPropertiesAllowed: false,
	}
}

func createTodoTaskSchema() ToolSchema {
	return ToolSchema{
		Name:        "create_todo_task",
		Description: "Create a task in the dummy todo store.",
		Properties: map[string]PropertySchema{
			"task_title": {Type: TypeString},
			"priority":   {Type: TypeString, Enum: []string{"low", "normal", "high"}},
			"due_date":   {Type: TypeString},
		},
		Required:                    []string{"task_title", "priority"},
		AdditionalPropertiesAllowed: false,
	}
}

func readTodoTasksSchema() ToolSchema {
	return ToolSchema{
		Name:        "read_todo_tasks",
		Description: "Read tasks from the dummy todo store by filter.",
		Properties: map[string]PropertySchema{
			"filter_text": {Type: TypeString},
			"status":      {Type: TypeString, Enum: []string{"open", "done", "all"}},
		},
		Required:                    []string{"status"},
		AdditionalPropertiesAllowed: false,
	}
}

func weatherSchema() ToolSchema {
	return ToolSchema{
		Name:        "get_weather",
		Description: "Read weather from a dummy provider.",
		Properties: map[string]PropertySchema{
			"location": {Type: TypeString},
			"date":     {Type: TypeString},
		},
		Required:                    []string{"location", "date"},
		AdditionalPropertiesAllowed: false,
	}
}

func newsSchema() ToolSchema {
	return ToolSchema{
		Name:        "get_news",
		Description: "Read news from a dummy provider.",
		Properties: map[string]PropertySchema{
			"topic":     {Type: TypeString},
			"timeframe": {Type: TypeString},
		},
		Required:                    []string{"topic", "timeframe"},
		AdditionalPropertiesAllowed: false,
	}
}

func readDatabaseRecordSchema() ToolSchema {
	return ToolSchema{
		Name:        "read_database_record",
		Description: "Read one record from a dummy key-value database.",
		Properties: map[string]PropertySchema{
			"table_name": {Type: TypeString},
			"key":        {Type: TypeString},
		},
		Required:                    []string{"table_name", "key"},
		AdditionalPropertiesAllowed: false,
	}
}

func writeDatabaseRecordSchema() ToolSchema {
	return ToolSchema{
		Name:        "write_database_record",
		Description: "Write one record into a dummy key-value database.",
		Properties: map[string]PropertySchema{
			"table_name": {Type: TypeString},
			"key":        {Type: TypeString},
			"payload":    {Type: TypeObject},
		},
		Required:                    []string{"table_name", "key", "payload"},
		AdditionalPropertiesAllowed: false,
	}
}
