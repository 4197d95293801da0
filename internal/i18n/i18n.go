// Package i18n holds the static en/pt translation tables. Lookups fall
// back to the raw key when a message is untranslated, so a missing key
// never breaks a page render.
package i18n

// Languages supported by the UI.
const (
	LangEN = "en"
	LangPT = "pt"
)

// Supported reports whether lang is a UI language this app ships.
func Supported(lang string) bool {
	return lang == LangEN || lang == LangPT
}

var translations = map[string]map[string]string{
	LangEN: {
		// validation / apology messages
		"error_username":        "Please provide a username",
		"error_password":        "Please provide a password",
		"invalid_login":         "Invalid username and/or password",
		"missing_username":      "Please choose a username",
		"missing_password":      "Please choose a password",
		"missing_confirmation":  "Please confirm your password",
		"match_error":           "Passwords do not match",
		"used_username":         "Username is already taken",
		"missing_value":         "Please provide an amount",
		"missing_type":          "Please choose a transaction type",
		"missing_category":      "Please choose a category",
		"invalid_type":          "Invalid transaction type",
		"invalid_value":         "Please provide a valid positive amount",
		"missing_category_name": "Please provide a category name",
		"used_category":         "You already have a category with this name",
		"invalid_budget":        "Please provide a category and an amount",
		"missing_recurring":     "Please fill in all fields",
		"invalid_recurring":     "Invalid amount or day of month",
		"server_error":          "Something went wrong, please try again",

		// flash messages
		"success_transaction": "Transaction added!",
		"delete_transaction":  "Transaction deleted",
		"added_category":      "Category added!",
		"delete_category":     "Category deleted",
		"save_budget":         "Budget saved!",
		"delete_budget":       "Budget deleted",
		"save_recurring":      "Recurring transaction saved!",
		"delete_recurring":    "Recurring transaction deleted",

		// page chrome
		"app_name":           "MyBudget",
		"dashboard":          "Dashboard",
		"add_transaction":    "Add Transaction",
		"history":            "History",
		"categories":         "Categories",
		"budgets":            "Budgets",
		"recurring":          "Recurring",
		"reports":            "Reports",
		"login":              "Log In",
		"register":           "Register",
		"logout":             "Log Out",
		"export":             "Export",
		"username":           "Username",
		"password":           "Password",
		"confirmation":       "Confirm password",
		"greeting":           "Hello",
		"total_income":       "Income",
		"total_expense":      "Expenses",
		"balance":            "Balance",
		"recent_transactions": "Recent transactions",
		"budget_progress":    "Budget progress",
		"description":        "Description",
		"amount":             "Amount",
		"type":               "Type",
		"category":           "Category",
		"date":               "Date",
		"month":              "Month",
		"day_of_month":       "Day of month",
		"all_categories":     "All categories",
		"filter":             "Filter",
		"save":               "Save",
		"delete":             "Delete",
		"budgeted":           "Budgeted",
		"spent":              "Spent",
		"no_data":            "Nothing here yet",
		"expenses_by_category": "Expenses by category",
	},
	LangPT: {
		"error_username":        "Informe um nome de usuário",
		"error_password":        "Informe uma senha",
		"invalid_login":         "Usuário e/ou senha inválidos",
		"missing_username":      "Escolha um nome de usuário",
		"missing_password":      "Escolha uma senha",
		"missing_confirmation":  "Confirme sua senha",
		"match_error":           "As senhas não coincidem",
		"used_username":         "Nome de usuário já está em uso",
		"missing_value":         "Informe um valor",
		"missing_type":          "Escolha o tipo da transação",
		"missing_category":      "Escolha uma categoria",
		"invalid_type":          "Tipo de transação inválido",
		"invalid_value":         "Informe um valor positivo válido",
		"missing_category_name": "Informe o nome da categoria",
		"used_category":         "Você já tem uma categoria com esse nome",
		"invalid_budget":        "Informe uma categoria e um valor",
		"missing_recurring":     "Preencha todos os campos",
		"invalid_recurring":     "Valor ou dia do mês inválido",
		"server_error":          "Algo deu errado, tente novamente",

		"success_transaction": "Transação adicionada!",
		"delete_transaction":  "Transação excluída",
		"added_category":      "Categoria adicionada!",
		"delete_category":     "Categoria excluída",
		"save_budget":         "Orçamento salvo!",
		"delete_budget":       "Orçamento excluído",
		"save_recurring":      "Transação recorrente salva!",
		"delete_recurring":    "Transação recorrente excluída",

		"app_name":           "MyBudget",
		"dashboard":          "Painel",
		"add_transaction":    "Nova Transação",
		"history":            "Histórico",
		"categories":         "Categorias",
		"budgets":            "Orçamentos",
		"recurring":          "Recorrentes",
		"reports":            "Relatórios",
		"login":              "Entrar",
		"register":           "Cadastrar",
		"logout":             "Sair",
		"export":             "Exportar",
		"username":           "Usuário",
		"password":           "Senha",
		"confirmation":       "Confirme a senha",
		"greeting":           "Olá",
		"total_income":       "Receitas",
		"total_expense":      "Despesas",
		"balance":            "Saldo",
		"recent_transactions": "Transações recentes",
		"budget_progress":    "Progresso dos orçamentos",
		"description":        "Descrição",
		"amount":             "Valor",
		"type":               "Tipo",
		"category":           "Categoria",
		"date":               "Data",
		"month":              "Mês",
		"day_of_month":       "Dia do mês",
		"all_categories":     "Todas as categorias",
		"filter":             "Filtrar",
		"save":               "Salvar",
		"delete":             "Excluir",
		"budgeted":           "Orçado",
		"spent":              "Gasto",
		"no_data":            "Nada por aqui ainda",
		"expenses_by_category": "Despesas por categoria",
	},
}

// T resolves key for lang, falling back to English and finally to the
// raw key itself.
func T(lang, key string) string {
	if m, ok := translations[lang]; ok {
		if msg, ok := m[key]; ok {
			return msg
		}
	}
	if msg, ok := translations[LangEN][key]; ok {
		return msg
	}
	return key
}

// Table returns the full message map for lang, for template rendering.
// Missing languages resolve to English.
func Table(lang string) map[string]string {
	if m, ok := translations[lang]; ok {
		return m
	}
	return translations[LangEN]
}
