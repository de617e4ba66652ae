package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/prabalesh/barstat/internal/models"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Source produces one snapshot per poll.
type Source interface {
	Collect(ctx context.Context) models.Snapshot
}

type tickMsg time.Time

type snapshotMsg models.Snapshot

type App struct {
	source   Source
	interval time.Duration

	snapshot models.Snapshot
	// previous counters for rate derivation
	prevSpeed models.NetSpeedInfo
	prevAt    time.Time
	rate      models.NetRate
	polls     int

	// collecting is set while a Collect is outstanding
	collecting bool

	activeTab int
	tabs      []string
	width     int
	height    int

	verticalScrollOffset int
	contentHeight        int

	batteryProgress progress.Model
	volumeProgress  progress.Model
}

func NewApp(source Source, interval time.Duration) *App {
	if interval <= 0 {
		interval = time.Second
	}
	return &App{
		source:          source,
		interval:        interval,
		tabs:            []string{"Overview", "Battery", "Thermal", "Network", "Audio"},
		batteryProgress: progress.New(progress.WithDefaultGradient()),
		volumeProgress:  progress.New(progress.WithDefaultGradient()),
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.startPoll(),
		a.tick(),
	)
}

func (a *App) tick() tea.Cmd {
	return tea.Tick(a.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// startPoll marks a collect as outstanding. Ticks that arrive before its
// snapshot do not start another.
func (a *App) startPoll() tea.Cmd {
	a.collecting = true
	return a.poll()
}

func (a *App) poll() tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(a.source.Collect(context.Background()))
	}
}

// record stores a snapshot and differences its counters against the
// previous poll of the same interface.
func (a *App) record(snapshot models.Snapshot) {
	if a.polls > 0 && snapshot.Interface == a.snapshot.Interface {
		a.rate = snapshot.NetSpeed.Rate(a.prevSpeed, snapshot.CollectedAt.Sub(a.prevAt))
	} else {
		a.rate = models.NetRate{}
	}
	a.snapshot = snapshot
	a.prevSpeed = snapshot.NetSpeed
	a.prevAt = snapshot.CollectedAt
	a.polls++
}

func (a *App) getContentAreaHeight() int {
	// title, bar, tabs, help and the blank lines between them
	reservedHeight := 9
	return max(1, a.height-reservedHeight)
}

func (a *App) getMaxScrollOffset() int {
	availableHeight := a.getContentAreaHeight()
	if a.contentHeight <= availableHeight {
		return 0
	}
	return a.contentHeight - availableHeight
}

func (a *App) clampVerticalScroll() {
	a.verticalScrollOffset = max(0, min(a.verticalScrollOffset, a.getMaxScrollOffset()))
}

func (a *App) applyVerticalScroll(content string) string {
	lines := strings.Split(content, "\n")
	a.contentHeight = len(lines)
	a.clampVerticalScroll()

	availableHeight := a.getContentAreaHeight()
	if len(lines) <= availableHeight {
		return content
	}

	start := a.verticalScrollOffset
	end := min(start+availableHeight, len(lines))
	result := strings.Join(lines[start:end], "\n")

	indicator := lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	if a.verticalScrollOffset > 0 {
		result = indicator.Render("▲ More content above") + "\n" + result
	}
	if a.verticalScrollOffset < a.getMaxScrollOffset() {
		result = result + "\n" + indicator.Render("▼ More content below")
	}
	return result
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

		a.batteryProgress.Width = max(10, min(40, a.width-25))
		a.volumeProgress.Width = max(10, min(40, a.width-25))
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return a, tea.Quit
		case "left", "h":
			if a.activeTab > 0 {
				a.activeTab--
				a.verticalScrollOffset = 0
			}
		case "right", "l", "tab":
			if a.activeTab < len(a.tabs)-1 {
				a.activeTab++
				a.verticalScrollOffset = 0
			}
		case "up", "k":
			if a.verticalScrollOffset > 0 {
				a.verticalScrollOffset--
			}
		case "down", "j":
			a.verticalScrollOffset++
			a.clampVerticalScroll()
		case "home":
			a.verticalScrollOffset = 0
		case "end":
			a.verticalScrollOffset = a.getMaxScrollOffset()
		}

	case tickMsg:
		if a.collecting {
			return a, a.tick()
		}
		return a, tea.Batch(a.startPoll(), a.tick())

	case snapshotMsg:
		a.collecting = false
		a.record(models.Snapshot(msg))
	}

	return a, nil
}

func (a *App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	title := TitleStyle.Width(a.width).Render("barstat")
	bar := BarStyle.Width(a.width).MaxWidth(a.width).MaxHeight(1).Render(a.renderBar())

	var content string
	switch a.activeTab {
	case 0:
		content = a.renderOverview()
	case 1:
		content = a.renderBattery()
	case 2:
		content = a.renderThermal()
	case 3:
		content = a.renderNetwork()
	case 4:
		content = a.renderAudio()
	}

	help := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Render("←/→ h/l: tabs • ↑/↓ k/j: scroll • Home/End: top/bottom • q: quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		bar,
		"",
		a.renderTabs(),
		"",
		a.applyVerticalScroll(content),
		"",
		help,
	)
}

// renderBar is the single status line a bar client would show.
func (a *App) renderBar() string {
	var parts []string
	for _, battery := range a.snapshot.Batteries {
		parts = append(parts, formatBattery(battery))
	}
	if len(a.snapshot.Thermal) > 0 {
		parts = append(parts, fmt.Sprintf("%d°C", a.snapshot.Thermal[0].TempC))
	}
	if a.snapshot.Interface != "" {
		parts = append(parts, fmt.Sprintf("%s ↓%s ↑%s", a.snapshot.Interface, formatRate(a.rate.Down), formatRate(a.rate.Up)))
	}
	if a.snapshot.Wireless.Connected() {
		parts = append(parts, fmt.Sprintf("%s %s", a.snapshot.Wireless.Name, formatSignal(a.snapshot.Wireless)))
	} else if a.snapshot.Wireless.Name != "" {
		parts = append(parts, "wifi "+a.snapshot.Wireless.Name)
	}
	parts = append(parts, "vol "+formatVolume(a.snapshot.Volume))
	return strings.Join(parts, " │ ")
}

func (a *App) renderTabs() string {
	var tabElements []string
	for i, tab := range a.tabs {
		if i == a.activeTab {
			tabElements = append(tabElements, ActiveTabStyle.Render(tab))
		} else {
			tabElements = append(tabElements, InactiveTabStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, tabElements...)
}

func (a *App) panel(content ...string) string {
	return BaseStyle.Width(max(10, a.width-4)).Render(
		lipgloss.JoinVertical(lipgloss.Left, content...),
	)
}

func (a *App) renderOverview() string {
	content := []string{HeaderStyle.Render("Overview"), ""}

	if len(a.snapshot.Batteries) == 0 {
		content = append(content, fmt.Sprintf("%s %s", LabelStyle.Render("Battery:"), MutedStyle.Render("none")))
	}
	for _, battery := range a.snapshot.Batteries {
		content = append(content,
			fmt.Sprintf("%s %s", LabelStyle.Render(fmt.Sprintf("Battery %d:", battery.Index)),
				levelStyle(battery.Percent).Render(fmt.Sprintf("%d%% %s", battery.Percent, battery.Status))),
		)
	}

	hottest := 0
	for _, zone := range a.snapshot.Thermal {
		hottest = max(hottest, zone.TempC)
	}
	content = append(content,
		fmt.Sprintf("%s %s", LabelStyle.Render("Hottest zone:"), tempStyle(hottest).Render(fmt.Sprintf("%d°C", hottest))),
		fmt.Sprintf("%s %s", LabelStyle.Render("Network:"), ValueStyle.Render(a.snapshot.Wireless.Name)),
		fmt.Sprintf("%s ↓%s ↑%s", LabelStyle.Render("Throughput:"), formatRate(a.rate.Down), formatRate(a.rate.Up)),
		fmt.Sprintf("%s %s", LabelStyle.Render("Volume:"), ValueStyle.Render(formatVolume(a.snapshot.Volume))),
		"",
		MutedStyle.Render("Collected "+a.snapshot.CollectedAt.Format(time.TimeOnly)),
	)
	return a.panel(content...)
}

func (a *App) renderBattery() string {
	content := []string{
		HeaderStyle.Render("Battery Information"),
		"",
		fmt.Sprintf("%s %s", LabelStyle.Render("Source:"), ValueStyle.Render(a.snapshot.BatterySource)),
		"",
	}
	if len(a.snapshot.Batteries) == 0 {
		content = append(content, MutedStyle.Render("No battery found"))
	}

	for _, battery := range a.snapshot.Batteries {
		timeLeft := battery.TimeLeft
		if timeLeft == "" {
			timeLeft = notAvailable
		}
		content = append(content,
			HeaderStyle.Render(fmt.Sprintf("BAT%d", battery.Index)),
			fmt.Sprintf("%s %s", LabelStyle.Render("Status:"), levelStyle(battery.Percent).Render(battery.Status.String())),
			fmt.Sprintf("%s %d%%", LabelStyle.Render("Level:"), battery.Percent),
			a.batteryProgress.ViewAs(min(1, max(0, float64(battery.Percent)/100.0))),
			fmt.Sprintf("%s %s", LabelStyle.Render("Time Left:"), ValueStyle.Render(timeLeft)),
			"",
		)
	}
	return a.panel(content...)
}

func (a *App) renderThermal() string {
	content := []string{HeaderStyle.Render("Thermal Zones"), ""}
	if len(a.snapshot.Thermal) == 0 {
		content = append(content, MutedStyle.Render("No thermal zones found"))
	}
	for _, zone := range a.snapshot.Thermal {
		content = append(content, fmt.Sprintf("%s %s",
			LabelStyle.Render(fmt.Sprintf("thermal_zone%d:", zone.Index)),
			tempStyle(zone.TempC).Render(fmt.Sprintf("%d°C", zone.TempC))))
	}
	return a.panel(content...)
}

func (a *App) renderNetwork() string {
	iface := a.snapshot.Interface
	if iface == "" {
		iface = notAvailable
	}

	nameStyle := ValueStyle
	switch a.snapshot.Wireless.Name {
	case models.NetNameError:
		nameStyle = ErrorStyle
	case models.NetNameDown:
		nameStyle = WarningStyle
	}

	content := []string{
		HeaderStyle.Render("Interface: " + iface),
		"",
		fmt.Sprintf("%s %s", LabelStyle.Render("Download:"), ValueStyle.Render(formatRate(a.rate.Down))),
		fmt.Sprintf("%s %s", LabelStyle.Render("Upload:"), ValueStyle.Render(formatRate(a.rate.Up))),
		fmt.Sprintf("%s %s", LabelStyle.Render("Total RX:"), formatBytes(a.snapshot.NetSpeed.DownBytes)),
		fmt.Sprintf("%s %s", LabelStyle.Render("Total TX:"), formatBytes(a.snapshot.NetSpeed.UpBytes)),
		"",
		HeaderStyle.Render("Wireless"),
		fmt.Sprintf("%s %s", LabelStyle.Render("SSID:"), nameStyle.Render(a.snapshot.Wireless.Name)),
		fmt.Sprintf("%s %s", LabelStyle.Render("Signal:"), ValueStyle.Render(formatSignal(a.snapshot.Wireless))),
	}
	return a.panel(content...)
}

func (a *App) renderAudio() string {
	volume := a.snapshot.Volume
	content := []string{
		HeaderStyle.Render("Audio"),
		"",
		fmt.Sprintf("%s %s", LabelStyle.Render("Volume:"), ValueStyle.Render(formatVolume(volume))),
	}
	if volume.Available() {
		content = append(content,
			a.volumeProgress.ViewAs(min(1, max(0, float64(volume.VolumePercent)/100.0))),
			fmt.Sprintf("%s %v", LabelStyle.Render("Muted:"), volume.IsMuted),
		)
	} else {
		content = append(content, MutedStyle.Render("Mixer control not available"))
	}
	return a.panel(content...)
}
