package schedule

import "github.com/m04kA/VeloStudio-SeatingService/pkg/txmanager"

// Переиспользуем интерфейс executor'а из txmanager:
// репозиторий не знает, выполняется он в транзакции или нет.
type DBExecutor = txmanager.DBExecutor
