package i18n

import "github.com/mgdov/eco-place/internal/model"

var bundles = map[Language]Bundle{
	LangRU: {
		Language: LangRU,
		PollutionTypes: typeLabels(map[model.PollutionType]string{
			model.PollutionBioWaste:   "Биомусор",
			model.PollutionPlastic:    "Пластик",
			model.PollutionGlass:      "Стекло",
			model.PollutionOil:        "Нефть/Мазут",
			model.PollutionHumanTrash: "Бытовой мусор",
			model.PollutionSeaweed:    "Водоросли",
			model.PollutionOther:      "Другое",
		}),
		Sources: sourceLabels(map[model.ReportSource]string{
			model.SourceMobileApp:   "Мобильное приложение",
			model.SourceTelegramBot: "Telegram бот",
		}),
		Statuses: map[model.ReportStatus]string{
			model.StatusNew:        "Новый",
			model.StatusInProgress: "В работе",
			model.StatusCompleted:  "Выполнено",
		},
		UI: map[string]string{
			"appName":            "Eco-Place",
			"volunteerPanel":     "Панель волонтера",
			"refresh":            "Обновить",
			"totalReports":       "Всего отчетов",
			"completed":          "Выполнено",
			"filters":            "Фильтры",
			"pollutionType":      "Тип загрязнения",
			"source":             "Источник",
			"resetFilters":       "Сбросить фильтры",
			"openOnMap":          "Открыть на карте",
			"takeToWork":         "Взять в работу",
			"markCompleted":      "Отметить выполненным",
			"cleanupCompleted":   "✓ Уборка завершена",
			"reportedBy":         "Сообщил",
			"reportsTitle":       "Отчеты о загрязнениях",
			"noReportsFound":     "Отчетов не найдено",
			"tryChangingFilters": "Попробуйте изменить фильтры или обновить данные",
			"mapView":            "Карта",
			"listView":           "Список",
			"systemDescription":  "Система мониторинга загрязнений побережья Каспийского моря",
			"loadingReports":     "Загрузка отчетов...",
		},
	},
	LangEN: {
		Language: LangEN,
		PollutionTypes: typeLabels(map[model.PollutionType]string{
			model.PollutionBioWaste:   "Bio-waste",
			model.PollutionPlastic:    "Plastic",
			model.PollutionGlass:      "Glass",
			model.PollutionOil:        "Oil/Tar",
			model.PollutionHumanTrash: "Human Waste",
			model.PollutionSeaweed:    "Seaweed",
			model.PollutionOther:      "Other",
		}),
		Sources: sourceLabels(map[model.ReportSource]string{
			model.SourceMobileApp:   "Mobile App",
			model.SourceTelegramBot: "Telegram Bot",
		}),
		Statuses: map[model.ReportStatus]string{
			model.StatusNew:        "New",
			model.StatusInProgress: "In Progress",
			model.StatusCompleted:  "Completed",
		},
		UI: map[string]string{
			"appName":            "Eco-Place",
			"volunteerPanel":     "Volunteer Dashboard",
			"refresh":            "Refresh",
			"totalReports":       "Total Reports",
			"completed":          "Completed",
			"filters":            "Filters",
			"pollutionType":      "Pollution Type",
			"source":             "Source",
			"resetFilters":       "Reset Filters",
			"openOnMap":          "Open on Map",
			"takeToWork":         "Take to Work",
			"markCompleted":      "Mark as Completed",
			"cleanupCompleted":   "✓ Cleanup Completed",
			"reportedBy":         "Reported by",
			"reportsTitle":       "Pollution Reports",
			"noReportsFound":     "No Reports Found",
			"tryChangingFilters": "Try changing filters or refresh data",
			"mapView":            "Map",
			"listView":           "List",
			"systemDescription":  "Caspian Sea Coast Pollution Monitoring System",
			"loadingReports":     "Loading reports...",
		},
	},
	LangAZ: {
		Language: LangAZ,
		PollutionTypes: typeLabels(map[model.PollutionType]string{
			model.PollutionBioWaste:   "Bio-tullantı",
			model.PollutionPlastic:    "Plastik",
			model.PollutionGlass:      "Şüşə",
			model.PollutionOil:        "Neft/Mazut",
			model.PollutionHumanTrash: "Məişət Tullantısı",
			model.PollutionSeaweed:    "Yosun",
			model.PollutionOther:      "Digər",
		}),
		Sources: sourceLabels(map[model.ReportSource]string{
			model.SourceMobileApp:   "Mobil Tətbiq",
			model.SourceTelegramBot: "Telegram Bot",
		}),
		Statuses: map[model.ReportStatus]string{
			model.StatusNew:        "Yeni",
			model.StatusInProgress: "İcrada",
			model.StatusCompleted:  "Tamamlandı",
		},
		UI: map[string]string{
			"appName":            "Eco-Place",
			"volunteerPanel":     "Könüllü Paneli",
			"refresh":            "Yenilə",
			"totalReports":       "Ümumi Hesabatlar",
			"completed":          "Tamamlandı",
			"filters":            "Filtrlər",
			"pollutionType":      "Çirklənmə Növü",
			"source":             "Mənbə",
			"resetFilters":       "Filtrləri Sıfırla",
			"openOnMap":          "Xəritədə Aç",
			"takeToWork":         "İşə Götür",
			"markCompleted":      "Tamamlandı kimi İşarələ",
			"cleanupCompleted":   "✓ Təmizlik Tamamlandı",
			"reportedBy":         "Bildirən",
			"reportsTitle":       "Çirklənmə Hesabatları",
			"noReportsFound":     "Hesabat Tapılmadı",
			"tryChangingFilters": "Filtrləri dəyişdirməyi və ya məlumatları yeniləməyi cəhd edin",
			"mapView":            "Xəritə",
			"listView":           "Siyahı",
			"systemDescription":  "Xəzər Dənizi Sahil Çirklənməsi Monitorinq Sistemi",
			"loadingReports":     "Hesabatlar yüklənir...",
		},
	},
	LangKK: {
		Language: LangKK,
		PollutionTypes: typeLabels(map[model.PollutionType]string{
			model.PollutionBioWaste:   "Био-қалдық",
			model.PollutionPlastic:    "Пластик",
			model.PollutionGlass:      "Шыны",
			model.PollutionOil:        "Мұнай/Мазут",
			model.PollutionHumanTrash: "Тұрмыстық Қалдық",
			model.PollutionSeaweed:    "Балдырлар",
			model.PollutionOther:      "Басқа",
		}),
		Sources: sourceLabels(map[model.ReportSource]string{
			model.SourceMobileApp:   "Мобильді Қосымша",
			model.SourceTelegramBot: "Telegram Бот",
		}),
		Statuses: map[model.ReportStatus]string{
			model.StatusNew:        "Жаңа",
			model.StatusInProgress: "Жұмыста",
			model.StatusCompleted:  "Аяқталды",
		},
		UI: map[string]string{
			"appName":            "Eco-Place",
			"volunteerPanel":     "Волонтер Панелі",
			"refresh":            "Жаңарту",
			"totalReports":       "Барлық Есептер",
			"completed":          "Аяқталды",
			"filters":            "Сүзгілер",
			"pollutionType":      "Ластану Түрі",
			"source":             "Көз",
			"resetFilters":       "Сүзгілерді Қалпына Келтіру",
			"openOnMap":          "Картада Ашу",
			"takeToWork":         "Жұмысқа Алу",
			"markCompleted":      "Орындалды деп Белгілеу",
			"cleanupCompleted":   "✓ Тазалау Аяқталды",
			"reportedBy":         "Хабарлаған",
			"reportsTitle":       "Ластану Есептері",
			"noReportsFound":     "Есептер Табылмады",
			"tryChangingFilters": "Сүзгілерді өзгертіп көріңіз немесе деректерді жаңартыңыз",
			"mapView":            "Карта",
			"listView":           "Тізім",
			"systemDescription":  "Каспий Теңізі Жағалауының Ластануын Бақылау Жүйесі",
			"loadingReports":     "Есептер жүктелуде...",
		},
	},
}
