package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeySettings          = "settings"
	KeySearch            = "search"
	KeySearchPlaceholder = "search_placeholder"
	KeyNewGroup          = "new_group"
	KeyGroupName         = "group_name"
	KeyAddGroup          = "add_group"
	KeyAddFile           = "add_file"
	KeyAddFolder         = "add_folder"
	KeyAddWebsite        = "add_website"
	KeyName              = "name"
	KeyAddress           = "address"
	KeyOpen              = "open"
	KeyReveal            = "reveal"
	KeyMoveTo            = "move_to"
	KeyMoveUp            = "move_up"
	KeyMoveDown          = "move_down"
	KeyRemove            = "remove"
	KeyRename            = "rename"
	KeyToggleNames       = "toggle_names"
	KeyToggleLayout      = "toggle_layout"
	KeyConfirmRemove     = "confirm_remove"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyPosition          = "position"
	KeyTheme             = "theme"
	KeySortBy            = "sort_by"
	KeyAutoHideDelay     = "auto_hide_delay"
	KeyTransparency      = "transparency"
	KeyAutoHide          = "auto_hide"
	KeyConfirmDeletion   = "confirm_deletion"
	KeyRunAtStartup      = "run_at_startup"
	KeyCheckUpdates      = "check_updates"
	KeyFontSize          = "font_size"
	KeyDefaultGroup      = "default_group"
	KeyLanguage          = "language"
	KeyNoMatches         = "no_matches"
	KeyErrorLaunching    = "error_launching"
	KeyShow              = "show"
	KeyHide              = "hide"
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

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Quickbar",
		KeySettings:          "Settings",
		KeySearch:            "Search",
		KeySearchPlaceholder: "Search items...",
		KeyNewGroup:          "New group",
		KeyGroupName:         "Group name",
		KeyAddGroup:          "Add group",
		KeyAddFile:           "Add file or application",
		KeyAddFolder:         "Add folder",
		KeyAddWebsite:        "Add website",
		KeyName:              "Name",
		KeyAddress:           "Address",
		KeyOpen:              "Open",
		KeyReveal:            "Show in folder",
		KeyMoveTo:            "Move to",
		KeyMoveUp:            "Move up",
		KeyMoveDown:          "Move down",
		KeyRemove:            "Remove",
		KeyRename:            "Rename",
		KeyToggleNames:       "Show/hide names",
		KeyToggleLayout:      "Horizontal/vertical",
		KeyConfirmRemove:     "Remove %q?",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyPosition:          "Position",
		KeyTheme:             "Theme",
		KeySortBy:            "Sort by",
		KeyAutoHideDelay:     "Auto-hide delay (ms)",
		KeyTransparency:      "Transparency",
		KeyAutoHide:          "Hide when inactive",
		KeyConfirmDeletion:   "Confirm deletion",
		KeyRunAtStartup:      "Run at startup",
		KeyCheckUpdates:      "Check for updates",
		KeyFontSize:          "Font size",
		KeyDefaultGroup:      "Default group",
		KeyLanguage:          "Language",
		KeyNoMatches:         "Nothing matches",
		KeyErrorLaunching:    "Could not open item",
		KeyShow:              "Show sidebar",
		KeyHide:              "Hide sidebar",
	}

	l.texts["ru"] = map[string]string{
		KeySettings:          "Настройки",
		KeySearch:            "Поиск",
		KeySearchPlaceholder: "Поиск...",
		KeyNewGroup:          "Новая группа",
		KeyGroupName:         "Название группы",
		KeyAddGroup:          "Добавить группу",
		KeyAddFile:           "Добавить файл или программу",
		KeyAddFolder:         "Добавить папку",
		KeyAddWebsite:        "Добавить сайт",
		KeyName:              "Название",
		KeyAddress:           "Адрес",
		KeyOpen:              "Открыть",
		KeyReveal:            "Показать в папке",
		KeyMoveTo:            "Переместить в",
		KeyMoveUp:            "Выше",
		KeyMoveDown:          "Ниже",
		KeyRemove:            "Удалить",
		KeyRename:            "Переименовать",
		KeyToggleNames:       "Показать/скрыть названия",
		KeyToggleLayout:      "Горизонтально/вертикально",
		KeyConfirmRemove:     "Удалить %q?",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyPosition:          "Положение",
		KeyTheme:             "Тема",
		KeySortBy:            "Сортировка",
		KeyAutoHideDelay:     "Задержка скрытия (мс)",
		KeyTransparency:      "Прозрачность",
		KeyAutoHide:          "Скрывать при неактивности",
		KeyConfirmDeletion:   "Подтверждать удаление",
		KeyRunAtStartup:      "Запускать при входе",
		KeyCheckUpdates:      "Проверять обновления",
		KeyFontSize:          "Размер шрифта",
		KeyDefaultGroup:      "Группа по умолчанию",
		KeyLanguage:          "Язык",
		KeyNoMatches:         "Ничего не найдено",
		KeyErrorLaunching:    "Не удалось открыть",
		KeyShow:              "Показать панель",
		KeyHide:              "Скрыть панель",
	}

	l.texts["pt"] = map[string]string{
		KeySettings:          "Configurações",
		KeySearch:            "Buscar",
		KeySearchPlaceholder: "Buscar itens...",
		KeyNewGroup:          "Novo grupo",
		KeyGroupName:         "Nome do grupo",
		KeyAddGroup:          "Adicionar grupo",
		KeyAddFile:           "Adicionar arquivo ou aplicativo",
		KeyAddFolder:         "Adicionar pasta",
		KeyAddWebsite:        "Adicionar site",
		KeyName:              "Nome",
		KeyAddress:           "Endereço",
		KeyOpen:              "Abrir",
		KeyReveal:            "Mostrar na pasta",
		KeyMoveTo:            "Mover para",
		KeyMoveUp:            "Mover para cima",
		KeyMoveDown:          "Mover para baixo",
		KeyRemove:            "Remover",
		KeyRename:            "Renomear",
		KeyToggleNames:       "Mostrar/ocultar nomes",
		KeyToggleLayout:      "Horizontal/vertical",
		KeyConfirmRemove:     "Remover %q?",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyPosition:          "Posição",
		KeyTheme:             "Tema",
		KeySortBy:            "Ordenar por",
		KeyAutoHideDelay:     "Atraso para ocultar (ms)",
		KeyTransparency:      "Transparência",
		KeyAutoHide:          "Ocultar quando inativo",
		KeyConfirmDeletion:   "Confirmar exclusão",
		KeyRunAtStartup:      "Iniciar com o sistema",
		KeyCheckUpdates:      "Verificar atualizações",
		KeyFontSize:          "Tamanho da fonte",
		KeyDefaultGroup:      "Grupo padrão",
		KeyLanguage:          "Idioma",
		KeyNoMatches:         "Nada encontrado",
		KeyErrorLaunching:    "Não foi possível abrir",
		KeyShow:              "Mostrar barra",
		KeyHide:              "Ocultar barra",
	}
}
