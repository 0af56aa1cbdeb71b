package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/adamanr/corp_summary/internal/controllers"
	"github.com/fatih/color"
)

const header = `
Главное меню:
1. Вывести иерархию команд
2. Вывести сводный отчет по департаментам
3. Сохранить сводный отчет в CSV-файл
4. Выход
`

const prompt = "Введите номер действия: "

type Menu struct {
	in         *bufio.Scanner
	out        io.Writer
	controller *controllers.DepartmentController
	logger     *slog.Logger
}

func New(in io.Reader, out io.Writer, controller *controllers.DepartmentController, logger *slog.Logger) *Menu {
	return &Menu{
		in:         bufio.NewScanner(in),
		out:        out,
		controller: controller,
		logger:     logger,
	}
}

// Run shows the menu until the user picks exit, input ends or ctx is done.
// Action failures are reported to the user and do not stop the loop.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if _, err := fmt.Fprint(m.out, header, prompt); err != nil {
			return err
		}

		if !m.in.Scan() {
			if err := m.in.Err(); err != nil {
				return err
			}
			return m.println("\nВыход из программы.")
		}

		choice := strings.TrimSpace(m.in.Text())
		m.logger.Debug("Menu choice", slog.String("choice", choice))

		switch choice {
		case "1":
			if err := RenderHierarchy(m.out, m.controller.GetHierarchy()); err != nil {
				return err
			}
		case "2":
			report, err := m.controller.GetReport()
			if err != nil {
				m.fail(err)
				continue
			}
			if err := RenderReport(m.out, report); err != nil {
				return err
			}
		case "3":
			path, err := m.controller.ExportReport()
			if err != nil {
				m.fail(err)
				continue
			}
			if err := m.println("Отчет сохранен в файл: " + path); err != nil {
				return err
			}
		case "4":
			return m.println("Выход из программы.")
		default:
			m.fail(nil)
		}
	}
}

func (m *Menu) println(s string) error {
	_, err := fmt.Fprintln(m.out, s)
	return err
}

// fail reports a bad menu choice when err is nil, otherwise the action error.
func (m *Menu) fail(err error) {
	msg := "Неверный ввод, попробуйте еще раз."
	if err != nil {
		msg = "Ошибка: " + err.Error()
	}
	if _, writeErr := color.New(color.FgRed).Fprintln(m.out, msg); writeErr != nil {
		m.logger.Error("Error writing to terminal", slog.String("error", writeErr.Error()))
	}
}
