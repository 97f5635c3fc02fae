package vegetation

// Scheduler fatia uma execução de posicionamento grande em lotes de tamanho
// limitado executados ao longo de vários frames, para limitar a latência por
// frame. Agendamento cooperativo e single-thread: o host chama Tick() uma vez
// por frame.
//
// Garantias: no máximo uma execução ativa por vez (Start durante uma execução
// é no-op); o callback de conclusão dispara exatamente uma vez; o campo
// anterior permanece intacto até o novo estar completo; a troca é
// responsabilidade do callback. Não há cancelamento no meio da execução.
type Scheduler struct {
	perTick    int
	run        *Run
	onComplete func(Field)
}

// NewScheduler cria um scheduler com o orçamento de lâminas aceitas por tick.
func NewScheduler(perTick int) *Scheduler {
	if perTick < 1 {
		perTick = 1
	}
	return &Scheduler{perTick: perTick}
}

// Start inicia uma nova execução. Retorna false (sem efeito) se já houver uma
// execução em andamento.
func (s *Scheduler) Start(placer *Placer, target int, onComplete func(Field)) bool {
	if s.run != nil {
		return false
	}
	s.run = NewRun(placer, target)
	s.onComplete = onComplete
	return true
}

// Active informa se há uma execução em andamento.
func (s *Scheduler) Active() bool {
	return s.run != nil
}

// Progress retorna o avanço da execução atual (0, 0 se inativa).
func (s *Scheduler) Progress() (accepted, target int) {
	if s.run == nil {
		return 0, 0
	}
	return s.run.Progress()
}

// Tick avança a execução em um lote. Ao concluir, finaliza o campo, invoca o
// callback uma única vez e libera o estado para a próxima execução.
func (s *Scheduler) Tick() {
	if s.run == nil {
		return
	}

	s.run.Step(s.perTick)
	if !s.run.Done() {
		return
	}

	field := s.run.Field()
	callback := s.onComplete
	s.run = nil
	s.onComplete = nil

	if callback != nil {
		callback(field)
	}
}
