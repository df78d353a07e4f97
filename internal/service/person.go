package service

import (
	"fmt"
	"strings"

	"attendance-bot/internal/models"
	"attendance-bot/internal/repository"
)

type PersonService struct {
	repo     repository.PersonRepository
	teamRepo repository.TeamRepository
}

func NewPersonService(repo repository.PersonRepository, teamRepo repository.TeamRepository) *PersonService {
	return &PersonService{repo: repo, teamRepo: teamRepo}
}

// Register создает нового человека с ролью member по умолчанию
func (s *PersonService) Register(chatID int64, username, firstName, lastName string) (*models.Person, error) {
	if firstName == "" {
		return nil, fmt.Errorf("имя не может быть пустым")
	}

	person := &models.Person{
		ChatID:    chatID,
		Username:  username,
		FirstName: firstName,
		LastName:  lastName,
		Role:      models.RoleMember,
		IsActive:  true,
	}

	if err := s.repo.Create(person); err != nil {
		return nil, fmt.Errorf("ошибка регистрации: %v", err)
	}

	return person, nil
}

// Get возвращает человека по chatID
func (s *PersonService) Get(chatID int64) (*models.Person, error) {
	person, err := s.repo.GetByChatID(chatID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения профиля: %v", err)
	}
	if person == nil {
		return nil, fmt.Errorf("профиль не найден")
	}
	return person, nil
}

// GetByID возвращает человека по внутреннему ID
func (s *PersonService) GetByID(id uint) (*models.Person, error) {
	person, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения профиля: %v", err)
	}
	if person == nil {
		return nil, fmt.Errorf("профиль не найден")
	}
	return person, nil
}

// GetAllActive возвращает всех активных людей
func (s *PersonService) GetAllActive() ([]*models.Person, error) {
	return s.repo.GetAllActive()
}

// GetAll возвращает всех, включая деактивированных
func (s *PersonService) GetAll() ([]*models.Person, error) {
	return s.repo.GetAll()
}

// AssignTeam привязывает человека к команде (создавая команду при
// необходимости)
func (s *PersonService) AssignTeam(chatID int64, teamName string) (*models.Team, error) {
	person, err := s.Get(chatID)
	if err != nil {
		return nil, err
	}

	team, err := s.teamRepo.GetByName(teamName)
	if err != nil {
		return nil, fmt.Errorf("ошибка поиска команды: %v", err)
	}
	if team == nil {
		team = &models.Team{Name: teamName}
		if err := s.teamRepo.Create(team); err != nil {
			return nil, fmt.Errorf("ошибка создания команды: %v", err)
		}
	}

	person.TeamID = &team.ID
	if err := s.repo.Update(person); err != nil {
		return nil, fmt.Errorf("ошибка привязки к команде: %v", err)
	}

	return team, nil
}

// SetActive включает или выключает человека в расчетах доступности
func (s *PersonService) SetActive(chatID int64, active bool) (*models.Person, error) {
	person, err := s.Get(chatID)
	if err != nil {
		return nil, err
	}

	person.IsActive = active
	if err := s.repo.Update(person); err != nil {
		return nil, fmt.Errorf("ошибка обновления: %v", err)
	}

	return person, nil
}

// SetRole обновляет роль (только по запросу администратора)
func (s *PersonService) SetRole(adminChatID, targetChatID int64, role models.Role) error {
	admin, err := s.repo.GetByChatID(adminChatID)
	if err != nil {
		return fmt.Errorf("ошибка проверки администратора: %v", err)
	}
	if admin == nil || !admin.IsAdmin() {
		return fmt.Errorf("доступ запрещен: только администраторы могут менять роли")
	}

	target, err := s.repo.GetByChatID(targetChatID)
	if err != nil {
		return fmt.Errorf("ошибка поиска человека: %v", err)
	}
	if target == nil {
		return fmt.Errorf("человек не найден")
	}

	target.SetRole(role)
	return s.repo.Update(target)
}

// InitializeAdmin создает или повышает администратора из конфига
func (s *PersonService) InitializeAdmin(chatID int64) error {
	if chatID == 0 {
		return nil
	}

	person, err := s.repo.GetByChatID(chatID)
	if err != nil {
		return err
	}

	if person == nil {
		person = &models.Person{
			ChatID:    chatID,
			FirstName: "Admin",
			Role:      models.RoleAdmin,
			IsActive:  true,
		}
		return s.repo.Create(person)
	}

	if person.IsAdmin() {
		return nil
	}

	person.Role = models.RoleAdmin
	return s.repo.Update(person)
}

// FormatPersonInfo форматирует профиль для вывода в чат
func (s *PersonService) FormatPersonInfo(person *models.Person) string {
	var lines []string

	lines = append(lines, "👤 Профиль:")
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("🆔 ID чата: %d", person.ChatID))
	lines = append(lines, fmt.Sprintf("📝 Имя: %s", person.FullName()))

	if person.Username != "" {
		lines = append(lines, fmt.Sprintf("🔗 Username: @%s", person.Username))
	}

	if person.IsAdmin() {
		lines = append(lines, "⭐ Роль: администратор")
	} else {
		lines = append(lines, "👥 Роль: участник")
	}

	if person.TeamID != nil {
		if team, err := s.teamRepo.GetByID(*person.TeamID); err == nil && team != nil {
			lines = append(lines, fmt.Sprintf("🛡 Команда: %s", team.Name))
		}
	} else {
		lines = append(lines, "🛡 Команда: не назначена")
	}

	if !person.IsActive {
		lines = append(lines, "🚫 Деактивирован (всегда числится на базе)")
	}

	return strings.Join(lines, "\n")
}
