package cmd

import "github.com/ameya/eduplan/internal/questionbank"

// defaultQuestions is the built-in Operating Systems question bank used
// when no --bank file is supplied.
var defaultQuestions = []questionbank.Record{
	{
		Topic:    "Memory Management",
		Question: "A process references a virtual address whose page is not in physical memory. Walk through what the OS does next.",
		Answer:   "A page fault traps to the kernel, which locates the page on disk, evicts a frame if needed, loads the page, updates the page table, and resumes the instruction.",
	},
	{
		Topic:    "Memory Management",
		Question: "Why does increasing the number of frames sometimes increase page faults under FIFO replacement?",
		Answer:   "Belady's anomaly: FIFO is not a stack algorithm, so a larger frame set does not necessarily contain the smaller set's pages.",
	},
	{
		Topic:    "Memory Management",
		Question: "What problem does the Translation Lookaside Buffer solve, and what happens on a TLB miss?",
		Answer:   "It caches page table entries to avoid a memory access per translation; on a miss the page table is walked and the entry is cached.",
	},
	{
		Topic:    "Process Management",
		Question: "Contrast a process and a thread in terms of address space and scheduling.",
		Answer:   "Threads share their process's address space and resources but are scheduled independently; processes have isolated address spaces.",
	},
	{
		Topic:    "Process Management",
		Question: "What states can a process be in, and what moves it from ready to running?",
		Answer:   "New, ready, running, waiting, terminated; the scheduler dispatches a ready process onto the CPU.",
	},
	{
		Topic:    "Process Management",
		Question: "Why can round-robin scheduling with a very small time quantum hurt throughput?",
		Answer:   "Context-switch overhead dominates useful work as the quantum shrinks.",
	},
	{
		Topic:    "Concurrency",
		Question: "Two threads increment a shared counter without synchronization. Why can the final value be wrong?",
		Answer:   "The read-modify-write is not atomic, so interleaved increments can lose updates.",
	},
	{
		Topic:    "Concurrency",
		Question: "State the four conditions required for deadlock.",
		Answer:   "Mutual exclusion, hold and wait, no preemption, and circular wait.",
	},
	{
		Topic:    "File Systems",
		Question: "What does an inode store, and what does it not store?",
		Answer:   "File metadata and block pointers; it does not store the file name, which lives in directory entries.",
	},
	{
		Topic:    "File Systems",
		Question: "Why do journaling file systems recover faster after a crash?",
		Answer:   "They replay or discard the intent log instead of scanning the whole disk for inconsistencies.",
	},
}
