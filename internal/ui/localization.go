package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle             = "app_title"
	KeyTabWorkouts          = "tab_workouts"
	KeyTabProgress          = "tab_progress"
	KeyTabSettings          = "tab_settings"
	KeyWorkouts             = "workouts"
	KeyCompletedWorkouts    = "completed_workouts"
	KeyProgressOverview     = "progress_overview"
	KeyPersonalInformation  = "personal_information"
	KeyName                 = "name"
	KeyEmail                = "email"
	KeyNotifications        = "notifications"
	KeyEnableNotifications  = "enable_notifications"
	KeyNotificationsEnabled = "notifications_enabled"
	KeyAppearance           = "appearance"
	KeyDarkMode             = "dark_mode"
	KeyLanguage             = "language"
	KeyVideo                = "video"
	KeyEnterVideoURL        = "enter_video_url"
	KeyWatchVideo           = "watch_video"
	KeyOpenInBrowser        = "open_in_browser"
	KeyNoVideo              = "no_video"
	KeyStatusNotStarted     = "status_not_started"
	KeyStatusInProgress     = "status_in_progress"
	KeyStatusCompleted      = "status_completed"
	KeyAverageCompletion    = "average_completion"
	KeyCompletedCount       = "completed_count"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:             "PatchWork Sports",
		KeyTabWorkouts:          "Workouts",
		KeyTabProgress:          "Progress",
		KeyTabSettings:          "Settings",
		KeyWorkouts:             "Workouts",
		KeyCompletedWorkouts:    "Completed Workouts",
		KeyProgressOverview:     "Progress Overview",
		KeyPersonalInformation:  "Personal Information",
		KeyName:                 "Name",
		KeyEmail:                "Email",
		KeyNotifications:        "Notifications",
		KeyEnableNotifications:  "Enable Notifications",
		KeyNotificationsEnabled: "Notifications are on",
		KeyAppearance:           "Appearance",
		KeyDarkMode:             "Dark Mode",
		KeyLanguage:             "Language",
		KeyVideo:                "Video",
		KeyEnterVideoURL:        "Paste a video link (https://youtu.be/...)",
		KeyWatchVideo:           "Watch video",
		KeyOpenInBrowser:        "Open in browser",
		KeyNoVideo:              "No video yet",
		KeyStatusNotStarted:     "Not started",
		KeyStatusInProgress:     "In progress",
		KeyStatusCompleted:      "Completed",
		KeyAverageCompletion:    "Average completion: %d%%",
		KeyCompletedCount:       "%d of %d workouts completed",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:             "PatchWork Sports",
		KeyTabWorkouts:          "Тренировки",
		KeyTabProgress:          "Прогресс",
		KeyTabSettings:          "Настройки",
		KeyWorkouts:             "Тренировки",
		KeyCompletedWorkouts:    "Выполненные тренировки",
		KeyProgressOverview:     "Обзор прогресса",
		KeyPersonalInformation:  "Личные данные",
		KeyName:                 "Имя",
		KeyEmail:                "Эл. почта",
		KeyNotifications:        "Уведомления",
		KeyEnableNotifications:  "Включить уведомления",
		KeyNotificationsEnabled: "Уведомления включены",
		KeyAppearance:           "Оформление",
		KeyDarkMode:             "Тёмная тема",
		KeyLanguage:             "Язык",
		KeyVideo:                "Видео",
		KeyEnterVideoURL:        "Вставьте ссылку на видео (https://youtu.be/...)",
		KeyWatchVideo:           "Смотреть видео",
		KeyOpenInBrowser:        "Открыть в браузере",
		KeyNoVideo:              "Видео пока нет",
		KeyStatusNotStarted:     "Не начата",
		KeyStatusInProgress:     "В процессе",
		KeyStatusCompleted:      "Выполнена",
		KeyAverageCompletion:    "Среднее выполнение: %d%%",
		KeyCompletedCount:       "Выполнено тренировок: %d из %d",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:             "PatchWork Sports",
		KeyTabWorkouts:          "Treinos",
		KeyTabProgress:          "Progresso",
		KeyTabSettings:          "Configurações",
		KeyWorkouts:             "Treinos",
		KeyCompletedWorkouts:    "Treinos Concluídos",
		KeyProgressOverview:     "Visão Geral do Progresso",
		KeyPersonalInformation:  "Informações Pessoais",
		KeyName:                 "Nome",
		KeyEmail:                "E-mail",
		KeyNotifications:        "Notificações",
		KeyEnableNotifications:  "Ativar Notificações",
		KeyNotificationsEnabled: "Notificações ativadas",
		KeyAppearance:           "Aparência",
		KeyDarkMode:             "Modo Escuro",
		KeyLanguage:             "Idioma",
		KeyVideo:                "Vídeo",
		KeyEnterVideoURL:        "Cole um link de vídeo (https://youtu.be/...)",
		KeyWatchVideo:           "Assistir vídeo",
		KeyOpenInBrowser:        "Abrir no navegador",
		KeyNoVideo:              "Nenhum vídeo ainda",
		KeyStatusNotStarted:     "Não iniciado",
		KeyStatusInProgress:     "Em andamento",
		KeyStatusCompleted:      "Concluído",
		KeyAverageCompletion:    "Conclusão média: %d%%",
		KeyCompletedCount:       "%d de %d treinos concluídos",
	}
}
